package storefront

import (
	"net/http"

	"TechStore/pkg/kit"
)

// placeholderSVG is substituted when a product has no image
// reference: fixed 300x300, neutral gray, "image not found" caption.
const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="300" height="300">` +
	`<rect width="100%" height="100%" fill="#e5e7eb"/>` +
	`<text x="50%" y="50%" dominant-baseline="middle" text-anchor="middle" fill="#6b7280" font-family="sans-serif" font-size="16">image not found</text>` +
	`</svg>`

func (s *Server) productImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad id", nil)
		return
	}

	p, ok := s.catalog.Get(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}

	if p.Img != "" {
		http.Redirect(w, r, p.Img, http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(placeholderSVG))
}
