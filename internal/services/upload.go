package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cmpd-nominations/nominations-backend/internal/logger"
)

// UploadService persists nomination attachments under one directory per
// household. It is a passthrough to the blob store keyed by household id; the
// household rows themselves never reference the files.
type UploadService interface {
	SaveFiles(ctx context.Context, householdID uuid.UUID, files []*multipart.FileHeader) error
}

type uploadService struct {
	log       *logger.Logger
	uploadDir string
}

func NewUploadService(log *logger.Logger, uploadDir string) UploadService {
	serviceLog := log.With("service", "UploadService")
	return &uploadService{log: serviceLog, uploadDir: uploadDir}
}

func (us *uploadService) SaveFiles(ctx context.Context, householdID uuid.UUID, files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return nil
	}

	dir := filepath.Join(us.uploadDir, householdID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating upload directory: %w", err)
	}

	group, ctx := errgroup.WithContext(ctx)
	for _, header := range files {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// filepath.Base strips any path segments a client smuggles into
			// the filename.
			name := filepath.Base(header.Filename)
			if name == "." || name == string(filepath.Separator) {
				return fmt.Errorf("invalid filename %q", header.Filename)
			}
			return us.saveOne(header, filepath.Join(dir, name))
		})
	}
	if err := group.Wait(); err != nil {
		us.log.Error("upload failed", "household_id", householdID, "error", err)
		return err
	}

	us.log.Info("files uploaded", "household_id", householdID, "count", len(files))
	return nil
}

func (us *uploadService) saveOne(header *multipart.FileHeader, dest string) error {
	src, err := header.Open()
	if err != nil {
		return fmt.Errorf("opening upload %q: %w", header.Filename, err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %q: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("writing %q: %w", dest, err)
	}
	return nil
}
