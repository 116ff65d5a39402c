package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/animalcatalog/internal/common"
	"github.com/dmitrijs2005/animalcatalog/internal/server/models"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// registerRequest leaves the password length to the hasher, which limits it
// in bytes.
type registerRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required"`
}

// loginRequest only requires presence so that any wrong credentials end up
// as 401.
type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type meResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type createAnimalRequest struct {
	Nombre       string `json:"nombre" validate:"required,max=200"`
	Tipo         string `json:"tipo" validate:"required,oneof=ave mamifero anfibio reptil pez"`
	Descripcion  string `json:"descripcion" validate:"max=10000"`
	WikipediaURL string `json:"wikipediaUrl" validate:"max=2048"`
	ImagenURL    string `json:"imagenUrl" validate:"max=2048"`
}

func (r createAnimalRequest) toModel() models.NewAnimal {
	return models.NewAnimal{
		Nombre:       strings.TrimSpace(r.Nombre),
		Tipo:         models.AnimalType(r.Tipo),
		Descripcion:  r.Descripcion,
		WikipediaURL: r.WikipediaURL,
		ImagenURL:    r.ImagenURL,
	}
}

type imageUploadRequest struct {
	ContentType string `json:"content_type" validate:"required"`
}

// decodeAndValidate reads a JSON body into dst and runs the validator on it.
// Failures are wrapped with common.ErrorInvalidInput.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", common.ErrorInvalidInput)
		}
		return fmt.Errorf("%w: malformed json", common.ErrorInvalidInput)
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: field %s failed %s", common.ErrorInvalidInput, jsonFieldName(fe), fe.Tag())
		}
		return fmt.Errorf("%w: %v", common.ErrorInvalidInput, err)
	}

	return nil
}

func jsonFieldName(fe validator.FieldError) string {
	if name := fe.Field(); name != "" {
		return name
	}
	return fe.StructField()
}
