// Package format renders timestamps the way the Co-Alert screens display
// them: relative wording for fresh content, a pt-BR date otherwise.
package format

import (
	"fmt"
	"time"
)

// FormatarData renders a timestamp relative to now: "agora" when under a
// minute old, "há N minuto(s)"/"há N hora(s)" while still on the same
// calendar day, and dd/mm/yyyy after that. Pure in (now, ts) so callers can
// inject a fixed clock in tests.
func FormatarData(now, ts time.Time) string {
	diff := now.Sub(ts)
	if diff < 0 {
		// Server clocks can run slightly ahead of the device.
		diff = 0
	}
	if diff < time.Minute {
		return "agora"
	}

	local := ts.In(now.Location())
	ny, nm, nd := now.Date()
	ty, tm, td := local.Date()
	if ny == ty && nm == tm && nd == td {
		if diff < time.Hour {
			return pluralize(int(diff.Minutes()), "minuto", "minutos")
		}
		return pluralize(int(diff.Hours()), "hora", "horas")
	}

	return local.Format("02/01/2006")
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("há 1 %s", singular)
	}
	return fmt.Sprintf("há %d %s", n, plural)
}
