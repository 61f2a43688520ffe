// Package components renders the landing page.
//
// Each exported function maps to one visual block and returns a gomponents
// node, so pages compose the same way the blocks nest on screen.
package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/pragati-app/pragati-web/internal/assets"
	"github.com/pragati-app/pragati-web/internal/uploader"
	"github.com/pragati-app/pragati-web/pkg/types"
)

const tailwindConfig = `tailwind.config = {
  theme: {
    extend: {
      colors: { titleColor: '#67f5a0' },
      fontFamily: { custom: ['Xanh Mono', 'sans-serif'] },
    },
  },
}`

// PageState is the per-visitor state the page is rendered from.
type PageState struct {
	Uploaders     map[string]UploaderView // keyed by panel id
	Notifications []uploader.Notification
}

// App renders the whole document: Navbar, Description, team photo, then one
// Task per panel in content order.
func App(site types.Site, state PageState) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(site.Title)),
				h.Link(h.Rel("stylesheet"), h.Href("https://fonts.googleapis.com/css2?family=Xanh+Mono&display=swap")),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(g.Raw(tailwindConfig)),
			),
			h.Body(
				h.Class("bg-black"),
				h.Div(
					Navbar(site),
					Description(site.Description),
					TeamPhoto(site.TeamImage),
					g.Map(site.Panels, func(p types.Panel) g.Node {
						return Task(p, state.Uploaders[p.ID])
					}),
				),
				g.Map(state.Notifications, Notice),
			),
		),
	)
}

func TeamPhoto(img types.Image) g.Node {
	return h.Img(h.Src(assets.URL(img.Src)), h.Alt(img.Alt), h.Class("mx-auto m-20 w-1000"))
}

// Notice renders a notification as a modal over a full-page backdrop. The
// backdrop stays until the visitor dismisses it, which reloads the page
// without the notification.
func Notice(n uploader.Notification) g.Node {
	return h.Div(
		h.Class("notice-overlay fixed inset-0 z-50 flex items-center justify-center bg-black/60"),
		g.El("dialog",
			g.Attr("open"),
			h.Class("notice notice-"+string(n.Kind)+" rounded-lg p-6 shadow-2xl"),
			g.Attr("role", "alertdialog"),
			g.Attr("aria-modal", "true"),
			h.P(h.Class("mb-4 text-lg"), g.Text(n.Message)),
			h.Form(
				h.Method("get"),
				h.Action("/"),
				h.Button(h.Type("submit"), h.Class("rounded bg-[#4CAF50] px-4 py-2 text-white"), g.Text("OK")),
			),
		),
	)
}
