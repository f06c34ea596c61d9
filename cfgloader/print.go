package cfgloader

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/rise-and-shine/userbook/mask"
)

// printConfig logs the loaded config, one "key: value" line per leaf, with fields
// tagged `mask:"true"` hidden.
func printConfig(config any) {
	slog.Info("[cfgloader]: loaded config:\n" + formatConfig(config))
}

func formatConfig(config any) string {
	var b strings.Builder
	for pair := mask.StructToOrdMap(config).Oldest(); pair != nil; pair = pair.Next() {
		fmt.Fprintf(&b, "  %s: %v\n", pair.Key, pair.Value)
	}
	return b.String()
}
