package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/animalcatalog/internal/client/api"
	"github.com/dmitrijs2005/animalcatalog/internal/common"
)

func TestList(t *testing.T) {
	f := &fakeAPI{animals: []api.Animal{
		{ID: 1, Nombre: "León", Tipo: "mamifero"},
		{ID: 2, Nombre: "Rana", Tipo: "anfibio"},
	}}
	app, out := newTestApp(f)

	require.NoError(t, app.List(context.Background()))
	assert.Equal(t, "#1 León (mamifero)\n#2 Rana (anfibio)\n", out.String())
}

func TestList_Empty(t *testing.T) {
	app, out := newTestApp(&fakeAPI{})

	require.NoError(t, app.List(context.Background()))
	assert.Equal(t, "The catalog is empty\n", out.String())
}

func TestShow(t *testing.T) {
	f := &fakeAPI{animals: []api.Animal{{
		ID: 1, Nombre: "León", Tipo: "mamifero", Descripcion: "Felino",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}}}
	app, out := newTestApp(f)

	require.NoError(t, app.Show(context.Background(), "1"))
	assert.Contains(t, out.String(), "#1 León")
	assert.Contains(t, out.String(), "descripcion: Felino")
	assert.Contains(t, out.String(), "2025-01-02 03:04:05")
	assert.NotContains(t, out.String(), "wikipedia")
}

func TestShow_PromptsForID(t *testing.T) {
	stubInputs(t, []string{"9"}, nil)
	app, out := newTestApp(&fakeAPI{})

	err := app.Show(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Contains(t, out.String(), "Error: not found")
}

func TestShow_BadID(t *testing.T) {
	app, _ := newTestApp(&fakeAPI{})

	for _, arg := range []string{"abc", "0", "-4"} {
		assert.ErrorIs(t, app.Show(context.Background(), arg), common.ErrorInvalidInput, arg)
	}
}

func TestAdd(t *testing.T) {
	stubInputs(t, []string{"Rana", "anfibio", "", "https://es.wikipedia.org/wiki/Rana", ""}, nil)
	f := &fakeAPI{}
	app, out := newTestApp(f)

	require.NoError(t, app.Add(context.Background()))
	assert.Equal(t, api.NewAnimal{Nombre: "Rana", Tipo: "anfibio", WikipediaURL: "https://es.wikipedia.org/wiki/Rana"}, f.created)
	assert.Equal(t, "Created #10 Rana\n", out.String())
}

func TestAdd_UploadsLocalImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rana.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	stubInputs(t, []string{"Rana", "anfibio", "", "", path}, nil)
	f := &fakeAPI{uploadURL: "http://cdn/rana"}
	app, _ := newTestApp(f)
	app.email = "a@x.com"

	require.NoError(t, app.Add(context.Background()))
	assert.Equal(t, path, f.uploadPath)
	assert.Equal(t, "image/png", f.uploadType)
	assert.Equal(t, "http://cdn/rana", f.created.ImagenURL)
}

func TestAdd_UploadRequiresLogin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rana.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	stubInputs(t, []string{"Rana", "anfibio", "", "", path}, nil)
	f := &fakeAPI{}
	app, _ := newTestApp(f)

	assert.Error(t, app.Add(context.Background()))
	assert.Empty(t, f.uploadPath)
	assert.Empty(t, f.created.Nombre)
}

func TestAdd_ServerRejects(t *testing.T) {
	stubInputs(t, []string{"Hormiga", "insecto", "", "", ""}, nil)
	f := &fakeAPI{createErr: common.ErrorInvalidInput}
	app, out := newTestApp(f)

	assert.ErrorIs(t, app.Add(context.Background()), common.ErrorInvalidInput)
	assert.Contains(t, out.String(), "Error: invalid input")
}

func TestDelete(t *testing.T) {
	f := &fakeAPI{}
	app, out := newTestApp(f)

	require.NoError(t, app.Delete(context.Background(), "4"))
	assert.Equal(t, []int64{4}, f.deleted)
	assert.Equal(t, "Deleted #4\n", out.String())

	f.deleteErr = common.ErrorNotFound
	assert.ErrorIs(t, app.Delete(context.Background(), "4"), common.ErrorNotFound)
}
