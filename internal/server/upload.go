package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pragati-app/pragati-web/internal/uploader"
)

// formChooser reads the file name a url-encoded upload form carries. An
// empty field means the visitor picked nothing since the page loaded.
type formChooser struct {
	r *http.Request
}

func (c formChooser) Choose(context.Context) (uploader.File, bool, error) {
	if err := c.r.ParseForm(); err != nil {
		return uploader.File{}, false, err
	}
	name := baseName(c.r.PostForm.Get("file"))
	if name == "" {
		return uploader.File{}, false, nil
	}
	return uploader.File{Name: name}, true, nil
}

// baseName drops a client-side directory prefix such as C:\fakepath\. The
// name itself is kept as sent, whitespace included.
func baseName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	return name
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	panel := chi.URLParam(r, "panel")
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess := s.session(w, r)

	ok, err := sess.WithPanel(panel, func(u *uploader.Uploader) error {
		if err := u.Choose(r.Context(), formChooser{r: r}); err != nil {
			return err
		}
		_, err := u.Submit(r.Context())
		return err
	})
	if !ok {
		http.Error(w, "panel not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("submit", zap.String("panel", panel), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/#"+panel, http.StatusSeeOther)
}
