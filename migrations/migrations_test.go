package migrations

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	commentLine = regexp.MustCompile(`(?m)^\s*--.*$`)
	doBlock     = regexp.MustCompile(`(?s)DO \$\$(.*?)\$\$;`)
)

func TestMigrations_AreRerunnable(t *testing.T) {
	names, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			raw, err := fs.ReadFile(FS, name)
			require.NoError(t, err)
			script := commentLine.ReplaceAllString(string(raw), "")

			for _, block := range doBlock.FindAllStringSubmatch(script, -1) {
				body := block[1]
				if strings.Contains(body, "ADD CONSTRAINT") {
					assert.Regexp(t, `IF NOT EXISTS \(SELECT 1 FROM pg_constraint`, body)
				}
			}

			for _, stmt := range strings.Split(doBlock.ReplaceAllString(script, ""), ";") {
				stmt = strings.Join(strings.Fields(stmt), " ")
				switch {
				case stmt == "":
				case strings.HasPrefix(stmt, "CREATE "):
					assert.Contains(t, stmt, "IF NOT EXISTS", stmt)
				case strings.HasPrefix(stmt, "ALTER TABLE"):
					assert.NotContains(t, stmt, "ADD CONSTRAINT", "unguarded constraint: %s", stmt)
				}
			}
		})
	}
}
