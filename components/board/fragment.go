package board

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/NikolaTosic-sudo/chess-marks/internal/highlight"
)

func TileID(tile string) string {
	return "tile-" + tile
}

// TileFragment is an out-of-band swap that repaints a single square.
func TileFragment(sq Square, p highlight.Palette) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(
			w,
			`<div id="%v" hx-swap-oob="true" class="tile" data-color="%v" style="%v"></div>`,
			templ.EscapeString(TileID(sq.Tile())),
			templ.EscapeString(sq.SelectedColor.String()),
			templ.EscapeString(sq.Style(p)),
		)
		return err
	})
}

func TileFragments(squares []Square, p highlight.Palette) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, sq := range squares {
			if err := TileFragment(sq, p).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
