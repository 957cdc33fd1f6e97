package shell

import (
	"fmt"
	"strconv"

	"github.com/bnema/paneshell/internal/domain/entity"
)

const (
	scriptHistoryBack    = "history.back()"
	scriptHistoryForward = "history.forward()"
	scriptReload         = "location.reload()"
)

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func scrollScript(deltaY float64) string {
	return fmt.Sprintf("window.scrollBy(0, %s);", formatCoord(deltaY))
}

func clickScript(x, y float64) string {
	return fmt.Sprintf(`(function() {
  const el = document.elementFromPoint(%s, %s);
  if (el) {
    el.click();
  }
})();`, formatCoord(x), formatCoord(y))
}

// contentInitScript tags every page of a content pane with its slot.
func contentInitScript(slot entity.Slot) string {
	return fmt.Sprintf("window.__PANESHELL_SLOT__ = %d;", int(slot))
}
