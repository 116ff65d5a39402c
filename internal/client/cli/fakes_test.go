package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/animalcatalog/internal/client/api"
	"github.com/dmitrijs2005/animalcatalog/internal/common"
)

type fakeAPI struct {
	token string

	regEmail, regPass     string
	loginEmail, loginPass string
	authErr               error

	me    *api.Me
	meErr error

	animals []api.Animal
	listErr error

	created   api.NewAnimal
	createErr error

	deleted   []int64
	deleteErr error

	uploadPath, uploadType string
	uploadURL              string
}

func (f *fakeAPI) SetToken(token string) { f.token = token }

func (f *fakeAPI) Register(_ context.Context, email, password string) (string, error) {
	f.regEmail, f.regPass = email, password
	if f.authErr != nil {
		return "", f.authErr
	}
	return "reg-token", nil
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (string, error) {
	f.loginEmail, f.loginPass = email, password
	if f.authErr != nil {
		return "", f.authErr
	}
	return "login-token", nil
}

func (f *fakeAPI) Me(context.Context) (*api.Me, error) { return f.me, f.meErr }

func (f *fakeAPI) ListAnimals(context.Context) ([]api.Animal, error) { return f.animals, f.listErr }

func (f *fakeAPI) GetAnimal(_ context.Context, id int64) (*api.Animal, error) {
	for i := range f.animals {
		if f.animals[i].ID == id {
			return &f.animals[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAPI) CreateAnimal(_ context.Context, a api.NewAnimal) (*api.Animal, error) {
	f.created = a
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &api.Animal{ID: 10, Nombre: a.Nombre, Tipo: a.Tipo}, nil
}

func (f *fakeAPI) DeleteAnimal(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) UploadImage(_ context.Context, path, contentType string) (string, error) {
	f.uploadPath, f.uploadType = path, contentType
	return f.uploadURL, nil
}

func newTestApp(f *fakeAPI) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{api: f, reader: bufio.NewReader(strings.NewReader("")), out: out}, out
}

// stubInputs feeds answers to getSimpleText in order and returns password for
// every getPassword call.
func stubInputs(t *testing.T, answers []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		v := answers[0]
		answers = answers[1:]
		return v, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}
