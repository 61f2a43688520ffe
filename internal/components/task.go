package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/pragati-app/pragati-web/pkg/types"
)

// UploaderView is what PdfUploader needs to draw one widget.
type UploaderView struct {
	PanelID  string
	Selected string
	Has      bool
}

// SubmitPath is where a panel's upload form posts.
func SubmitPath(panelID string) string {
	return "/panels/" + panelID + "/submit"
}

// Task renders one panel: its copy on the left, its own uploader on the right.
func Task(p types.Panel, up UploaderView) g.Node {
	up.PanelID = p.ID
	return h.Div(
		h.ID(p.ID),
		h.Class("rounded-lg border-titleColor border-[3px] flex justify-between text-white mt-28 ml-10 mr-10"),
		h.Div(h.Class("p-4 text-[24px] text-justify font-bold"), g.Text(p.Text)),
		PdfUploader(up),
	)
}

// PdfUploader renders the file input and submit button. The form is
// url-encoded, so browsers send the chosen file's name and never its bytes.
func PdfUploader(v UploaderView) g.Node {
	return h.Div(
		h.Class("file-uploader"),
		h.Style("text-align: center; padding: 20px"),
		h.Form(
			h.Method("post"),
			h.Action(SubmitPath(v.PanelID)),
			h.Input(
				h.Type("file"),
				h.Name("file"),
				h.Style("margin: 10px 0; padding: 10px; border-radius: 5px; border: 1px solid #ccc"),
			),
			h.Br(),
			h.Button(
				h.Type("submit"),
				h.Style("background-color: #4CAF50; color: white; border: none; padding: 10px 20px; border-radius: 5px; cursor: pointer"),
				g.Text("Upload"),
			),
		),
		g.If(v.Has,
			h.P(
				h.Style("margin-top: 10px; color: #555"),
				g.Text("Selected File: "),
				h.Strong(g.Text(v.Selected)),
			),
		),
	)
}
