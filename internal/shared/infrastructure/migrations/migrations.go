// Package migrations applies the registry schema. Statements use CREATE
// TABLE IF NOT EXISTS so re-running is harmless.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/sbhunu/landadmin/internal/shared/infrastructure/database"
)

//go:embed postgres/*.sql sqlite/*.sql
var schemaFS embed.FS

// Run applies all migrations for the connection's driver, in file order.
func Run(ctx context.Context, conn database.Connection) error {
	dir := conn.Driver().String()

	entries, err := schemaFS.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read migrations for %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		script, err := schemaFS.ReadFile(dir + "/" + file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		for _, stmt := range splitStatements(string(script)) {
			if _, err := conn.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("apply migration %s: %w", file, err)
			}
		}
	}
	return nil
}

// splitStatements breaks a script on semicolons at line ends. The schema
// avoids semicolons inside literals, so this simple split is sufficient.
func splitStatements(script string) []string {
	var out []string
	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
