package app

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"bellavie/models"

	"github.com/go-playground/validator/v10"
)

// RegisterContractor validates the form fields, uploads the ID documents and
// submits the registration. Validation failures are printed per field,
// mirroring the form's inline error messages. The field check runs before any
// upload so a rejected form never leaves documents in the bucket.
func (a *App) RegisterContractor(ctx context.Context, reg models.ContractorRegistration, docFiles []string) error {
	if err := a.Validate.StructExcept(reg, "IDDocuments"); err != nil {
		a.printValidationErrors(err)
		return err
	}

	for _, file := range docFiles {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("cannot read document %s: %w", file, err)
		}
		contentType := mime.TypeByExtension(filepath.Ext(file))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		objectPath, err := a.Storage.Upload(ctx, "id-documents", filepath.Base(file), f, contentType)
		f.Close()
		if err != nil {
			return err
		}
		reg.IDDocuments = append(reg.IDDocuments, objectPath)
	}

	if err := a.Validate.Struct(reg); err != nil {
		a.printValidationErrors(err)
		return err
	}

	provider, err := a.API.RegisterContractor(ctx, reg)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "%s (#%s)\n", a.Bundle.T("register.submitted"), provider.ID)
	return nil
}

func (a *App) printValidationErrors(err error) {
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		fmt.Fprintln(a.Out, a.Bundle.T("error.validation"))
		for _, fe := range invalid {
			fmt.Fprintf(a.Out, "  %s: %s\n", fe.Field(), fe.Tag())
		}
	}
}
