package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Description(text string) g.Node {
	return h.Div(
		h.Class("flex justify-center rounded-[17px] bg-[#f4c95d] w-3/4 mx-auto mt-28 brightness-300"),
		h.H1(h.Class("p-10 text-3xl font-extrabold font-custom"), g.Text(text)),
	)
}
