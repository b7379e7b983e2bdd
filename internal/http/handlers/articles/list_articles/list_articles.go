package listarticles

import (
	"net/http"

	e "mapacademy/internal/core/domain/errors"
	"mapacademy/internal/core/services"
	listarticles "mapacademy/internal/core/services/list_articles"
	"mapacademy/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listarticles.Input, listarticles.Result]
}

func New(
	service services.Service[listarticles.Input, listarticles.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Articles []response.Article `json:"articles"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listarticles.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	articles := make([]response.Article, 0, len(result.Articles))
	for _, da := range result.Articles {
		a := response.Article{}
		a.FromDomainArticle(da)
		articles = append(articles, a)
	}
	response.Render(rw, Result{Articles: articles}, http.StatusOK)
}
