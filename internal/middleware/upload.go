package middleware

import (
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	pkgdto "github.com/Umar-Zak/lyospot/pkg/dto"
	"github.com/Umar-Zak/lyospot/pkg/errs"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const uploadsContextKey = "uploads"

var imageExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".gif":  true,
	".png":  true,
	".jfif": true,
}

type FileField struct {
	Name     string
	Required bool
}

// Upload accepts the named multipart file fields, checks each against the
// image extension allow-list and stores them under <assetRoot>/<entity> by
// their original filename. The public /assets paths are attached to the
// context for the handler.
func Upload(assetRoot string, entity string, fields ...FileField) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			form, err := c.MultipartForm()
			if err != nil {
				if anyRequired(fields) {
					return pkgdto.WriteErrorResponse(c, errs.ErrClient, nil)
				}

				return next(c)
			}

			paths := map[string]string{}
			for _, field := range fields {
				files := form.File[field.Name]
				if len(files) == 0 {
					if field.Required {
						return pkgdto.WriteErrorResponse(c, errs.ErrClient, []pkgdto.ValidationError{{Field: field.Name, Tag: "required"}})
					}
					continue
				}

				fileHeader := files[0]
				ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
				if !imageExtensions[ext] {
					return pkgdto.WriteErrorResponse(c, errs.ErrNotAnImage, nil)
				}

				if err := saveFile(fileHeader, filepath.Join(assetRoot, entity)); err != nil {
					log.Ctx(c.Request().Context()).Error().Err(err).Str("component", "Upload").Msg("")
					return pkgdto.WriteErrorResponse(c, errs.ErrInternalServer, nil)
				}

				paths[field.Name] = path.Join("/assets", entity, fileHeader.Filename)
			}

			c.Set(uploadsContextKey, paths)

			return next(c)
		}
	}
}

// UploadedFiles returns the stored public paths by field name, or an empty
// map if nothing was uploaded.
func UploadedFiles(c echo.Context) map[string]string {
	paths, ok := c.Get(uploadsContextKey).(map[string]string)
	if !ok {
		return map[string]string{}
	}
	return paths
}

func anyRequired(fields []FileField) bool {
	for _, field := range fields {
		if field.Required {
			return true
		}
	}
	return false
}

func saveFile(fileHeader *multipart.FileHeader, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, filepath.Base(fileHeader.Filename)))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
