package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lista/internal/testutil"
	clitest "github.com/thenoetrevino/lista/internal/testutil/cli"
)

func TestListPriorities(t *testing.T) {
	app := testutil.SetupTestApp(t)

	t.Run("quiet", func(t *testing.T) {
		res, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "1\n2\n3\n", res.Stdout)
	})

	t.Run("json", func(t *testing.T) {
		res, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, res.Stdout)
		priorities := result["priorities"].([]interface{})
		require.Len(t, priorities, 3)
		assert.Equal(t, "High", priorities[0].(map[string]interface{})["level"])
		assert.Equal(t, "Low", priorities[2].(map[string]interface{})["level"])
	})

	t.Run("human", func(t *testing.T) {
		res, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, res.Stdout, "Medium")
	})
}
