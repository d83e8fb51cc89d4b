package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"blogd/internal/custom_errors"
	"blogd/internal/delivery/http/templates"
	"blogd/internal/logger"
	"blogd/internal/model"
)

type PostSharer interface {
	GetPublishedByID(ctx context.Context, id int64) (*model.Post, error)
	SharePost(ctx context.Context, postID int64, share *model.SharePostDTO) error
}

type SharePostHandler struct {
	postService PostSharer
	validate    *validator.Validate
	blogTitle   string
	log         *logger.Logger
}

func NewSharePostHandler(postService PostSharer, validate *validator.Validate, blogTitle string, log *logger.Logger) *SharePostHandler {
	return &SharePostHandler{
		postService: postService,
		validate:    validate,
		blogTitle:   blogTitle,
		log:         log,
	}
}

func (h *SharePostHandler) Share(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	post, err := h.postService.GetPublishedByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		h.log.Error("Failed to get post for sharing", slog.Int64("id", postID), slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	switch r.Method {
	case http.MethodGet:
		renderHTML(w, h.log, http.StatusOK,
			templates.SharePostPage(h.blogTitle, post, &model.SharePostDTO{}, nil, false))

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			return
		}

		form := &model.SharePostDTO{
			Name:      r.PostFormValue("name"),
			EmailFrom: r.PostFormValue("email_from"),
			EmailTo:   r.PostFormValue("email_to"),
			Comments:  r.PostFormValue("comments"),
		}

		fieldErrors := ValidateShareForm(h.validate, form)
		if len(fieldErrors) > 0 {
			renderHTML(w, h.log, http.StatusUnprocessableEntity,
				templates.SharePostPage(h.blogTitle, post, form, fieldErrors, false))
			return
		}

		if err := h.postService.SharePost(r.Context(), postID, form); err != nil {
			switch {
			case errors.Is(err, custom_errors.ErrPostNotFound):
				http.Error(w, "Post not found", http.StatusNotFound)
			case errors.Is(err, custom_errors.ErrMailDelivery):
				renderHTML(w, h.log, http.StatusBadGateway,
					templates.SharePostPage(h.blogTitle, post, form, nil, true))
			default:
				h.log.Error("Failed to share post", slog.Int64("id", postID), slog.String("error", err.Error()))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
			return
		}

		renderHTML(w, h.log, http.StatusOK, templates.ShareSentPage(h.blogTitle, post, form.EmailTo))

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ValidateShareForm checks the share form and returns per-field messages keyed
// by form field name. An empty map means the form is valid.
func ValidateShareForm(validate *validator.Validate, form *model.SharePostDTO) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"name": "Invalid form submission."}
	}

	fieldNames := map[string]string{
		"Name":      "name",
		"EmailFrom": "email_from",
		"EmailTo":   "email_to",
		"Comments":  "comments",
	}

	fieldErrors := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		name, ok := fieldNames[fieldErr.Field()]
		if !ok {
			name = fieldErr.Field()
		}
		switch fieldErr.Tag() {
		case "required":
			fieldErrors[name] = "This field is required."
		case "email":
			fieldErrors[name] = "Enter a valid e-mail address."
		case "max":
			fieldErrors[name] = "Ensure this value has at most " + fieldErr.Param() + " characters."
		default:
			fieldErrors[name] = "Invalid value."
		}
	}
	return fieldErrors
}
