package getarticle

import (
	"errors"
	"net/http"
	"strconv"

	"mapacademy/internal/core/domain/article"
	e "mapacademy/internal/core/domain/errors"
	"mapacademy/internal/core/services"
	getarticle "mapacademy/internal/core/services/get_article"
	"mapacademy/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[getarticle.Input, getarticle.Result]
}

func New(
	service services.Service[getarticle.Input, getarticle.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	articleID, err := strconv.ParseInt(chi.URLParam(r, "articleID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "article does not exist", http.StatusNotFound)
		return
	}

	result, err := h.service.Run(r.Context(), getarticle.Input{ArticleID: article.ID(articleID)})
	if errors.Is(err, article.ErrArticleDoesNotExist) {
		response.RenderError(rw, "article does not exist", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	a := response.Article{}
	a.FromDomainArticle(result.Article)
	response.Render(rw, a, http.StatusOK)
}
