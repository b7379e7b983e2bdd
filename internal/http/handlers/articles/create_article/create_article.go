package createarticle

import (
	"encoding/json"
	"io"
	"net/http"

	c "mapacademy/internal/core/domain/common"
	e "mapacademy/internal/core/domain/errors"
	"mapacademy/internal/core/services"
	createarticle "mapacademy/internal/core/services/create_article"
	"mapacademy/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[createarticle.Input, createarticle.Result]
}

func New(
	service services.Service[createarticle.Input, createarticle.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	ImageURL *string `json:"image_url"`
	Date     string  `json:"date"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.Body, validation.Required),
		validation.Field(&i.ImageURL, is.URL),
		validation.Field(&i.Date, validation.Required, validation.Date("2006-01-02")),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderValidationError(rw, err)
		return
	}

	imageURL := c.Optional[string]{}
	if input.ImageURL != nil {
		imageURL = c.NewOptional(*input.ImageURL, true)
	}
	result, err := h.service.Run(
		r.Context(),
		createarticle.Input{
			Title:    input.Title,
			Body:     input.Body,
			ImageURL: imageURL,
			Date:     input.Date,
		},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	a := response.Article{}
	a.FromDomainArticle(result.Article)
	response.Render(rw, a, http.StatusCreated)
}
