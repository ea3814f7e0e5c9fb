package display

import (
	"fmt"
	"io"

	"github.com/backmassage/audiobatch/internal/term"
)

// PrintBanner writes the ASCII art banner to w, in magenta when colors are
// enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Paint(term.RoleBanner, `                 _ _       _           _       _
  __ _ _   _  __| (_) ___ | |__   __ _| |_ ___| |__
 / _`+"`"+` | | | |/ _`+"`"+` | |/ _ \| '_ \ / _`+"`"+` | __/ __| '_ \
| (_| | |_| | (_| | | (_) | |_) | (_| | || (__| | | |
 \__,_|\__,_|\__,_|_|\___/|_.__/ \__,_|\__\___|_| |_|
`))
}
