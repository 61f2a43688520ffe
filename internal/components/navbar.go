package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/pragati-app/pragati-web/internal/assets"
	"github.com/pragati-app/pragati-web/pkg/types"
)

func Navbar(site types.Site) g.Node {
	return h.Div(
		h.Class("text-white flex justify-between items-center mx-auto bg-[#999090] bg-opacity-30"),
		h.Div(
			h.H1(h.Class("text-titleColor text-[50px] font-mono pt-4 pl-4 font-extrabold"), g.Text(site.Title)),
			h.H2(h.Class("text-[#ffffff] text-[25px] font-mono pl-4 pb-4 font-extrabold"), g.Text(site.Subtitle)),
		),
		h.Ul(h.Class("flex"), g.Map(site.Nav, navItem)),
	)
}

// navItem renders a label beside its icon. Items without an href are plain text.
func navItem(item types.NavItem) g.Node {
	var label g.Node = g.Text(item.Label)
	if item.Href != "" {
		label = h.A(h.Href(item.Href), g.Text(item.Label))
	}
	return h.Li(
		h.Class("flex p-4 justify-between font-bold text-[24px] gap-3 hover:text-yellow-300"),
		label,
		h.Img(h.Src(assets.URL(item.Icon)), h.Alt(""), h.Class("w-10 h-auto")),
	)
}
