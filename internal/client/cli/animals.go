package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/animalcatalog/internal/client/api"
	"github.com/dmitrijs2005/animalcatalog/internal/common"
)

func (a *App) List(ctx context.Context) error {
	animals, err := a.api.ListAnimals(ctx)
	if err != nil {
		return a.fail(err)
	}
	if len(animals) == 0 {
		fmt.Fprintln(a.out, "The catalog is empty")
		return nil
	}
	for _, an := range animals {
		fmt.Fprintf(a.out, "#%d %s (%s)\n", an.ID, an.Nombre, an.Tipo)
	}
	return nil
}

func (a *App) Show(ctx context.Context, arg string) error {
	id, err := a.animalID(arg, "Enter animal id to show")
	if err != nil {
		return a.fail(err)
	}

	an, err := a.api.GetAnimal(ctx, id)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "#%d %s\n", an.ID, an.Nombre)
	fmt.Fprintf(a.out, "  tipo:        %s\n", an.Tipo)
	if an.Descripcion != "" {
		fmt.Fprintf(a.out, "  descripcion: %s\n", an.Descripcion)
	}
	if an.WikipediaURL != "" {
		fmt.Fprintf(a.out, "  wikipedia:   %s\n", an.WikipediaURL)
	}
	if an.ImagenURL != "" {
		fmt.Fprintf(a.out, "  imagen:      %s\n", an.ImagenURL)
	}
	fmt.Fprintf(a.out, "  created:     %s\n", an.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// Add prompts for the fields of a new animal. An image answer that names a
// local file is uploaded first and replaced with its public URL.
func (a *App) Add(ctx context.Context) error {
	var in api.NewAnimal
	prompts := []struct {
		text string
		dst  *string
	}{
		{"Nombre", &in.Nombre},
		{"Tipo (ave, mamifero, anfibio, reptil, pez)", &in.Tipo},
		{"Descripcion (optional)", &in.Descripcion},
		{"Wikipedia URL (optional)", &in.WikipediaURL},
		{"Image URL or local file (optional)", &in.ImagenURL},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.text, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	if in.ImagenURL != "" && isLocalFile(in.ImagenURL) {
		url, err := a.upload(ctx, in.ImagenURL)
		if err != nil {
			return a.fail(err)
		}
		in.ImagenURL = url
	}

	created, err := a.api.CreateAnimal(ctx, in)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Created #%d %s\n", created.ID, created.Nombre)
	return nil
}

func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := a.animalID(arg, "Enter animal id to delete")
	if err != nil {
		return a.fail(err)
	}
	if err := a.api.DeleteAnimal(ctx, id); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Deleted #%d\n", id)
	return nil
}

func (a *App) upload(ctx context.Context, path string) (string, error) {
	if !a.isLoggedIn() {
		return "", errors.New("log in to upload images")
	}
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if ct == "" {
		return "", fmt.Errorf("%w: unknown image type for %s", common.ErrorInvalidInput, path)
	}
	return a.api.UploadImage(ctx, path, ct)
}

func (a *App) animalID(arg, prompt string) (int64, error) {
	if arg == "" {
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
		arg = v
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id must be a positive integer", common.ErrorInvalidInput)
	}
	return id, nil
}

func isLocalFile(s string) bool {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return false
	}
	st, err := os.Stat(s)
	return err == nil && st.Mode().IsRegular()
}
