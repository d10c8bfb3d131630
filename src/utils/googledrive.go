package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

var (
	driveService *drive.Service
	driveOnce    sync.Once
)

// InitGoogleDriveService inicializa el servicio de Google Drive usando Service Account
func InitGoogleDriveService() error {
	var initErr error
	driveOnce.Do(func() {
		credsBytes, err := loadDriveCredentials()
		if err != nil {
			initErr = err
			return
		}

		ctx := context.Background()
		creds, err := google.CredentialsFromJSON(ctx, credsBytes, drive.DriveReadonlyScope)
		if err != nil {
			initErr = fmt.Errorf("error cargando credenciales: %w", err)
			return
		}

		driveService, err = drive.NewService(ctx, option.WithCredentials(creds))
		if err != nil {
			initErr = fmt.Errorf("error creando servicio de Google Drive: %w", err)
			return
		}

		log.Printf("[GOOGLE_DRIVE] Servicio inicializado correctamente")
	})
	return initErr
}

// loadDriveCredentials lee las credenciales desde archivo o desde la variable
// de entorno con el JSON directo
func loadDriveCredentials() ([]byte, error) {
	if path := os.Getenv("GOOGLE_DRIVE_CREDENTIALS_PATH"); path != "" {
		credsBytes, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error leyendo archivo de credenciales: %w", err)
		}
		return credsBytes, nil
	}
	if credsJSON := os.Getenv("GOOGLE_DRIVE_CREDENTIALS_JSON"); credsJSON != "" {
		return []byte(credsJSON), nil
	}
	return nil, fmt.Errorf("GOOGLE_DRIVE_CREDENTIALS_PATH o GOOGLE_DRIVE_CREDENTIALS_JSON debe estar configurado")
}

// GetGoogleDriveService retorna el servicio de Google Drive (inicializa si es necesario)
func GetGoogleDriveService() (*drive.Service, error) {
	if driveService == nil {
		if err := InitGoogleDriveService(); err != nil {
			return nil, err
		}
	}
	return driveService, nil
}

// ExtractFileIDFromURL extrae el ID del archivo de una URL de Google Drive
func ExtractFileIDFromURL(url string) (string, error) {
	patterns := []string{
		`/file/d/([a-zA-Z0-9_-]+)`,
		`id=([a-zA-Z0-9_-]+)`,
		`/folders/([a-zA-Z0-9_-]+)`,
		`drive\.google\.com/open\?id=([a-zA-Z0-9_-]+)`,
	}

	for _, pattern := range patterns {
		re := regexp.MustCompile(pattern)
		matches := re.FindStringSubmatch(url)
		if len(matches) > 1 {
			return matches[1], nil
		}
	}

	return "", fmt.Errorf("no se pudo extraer el ID del archivo de la URL: %s", url)
}

// DownloadFileFromGoogleDrive descarga un archivo de Google Drive usando la API
func DownloadFileFromGoogleDrive(fileID string) (io.ReadCloser, string, error) {
	service, err := GetGoogleDriveService()
	if err != nil {
		return nil, "", fmt.Errorf("error obteniendo servicio de Google Drive: %w", err)
	}

	file, err := service.Files.Get(fileID).Fields("id", "name", "mimeType", "size").Do()
	if err != nil {
		return nil, "", fmt.Errorf("error obteniendo información del archivo: %w", err)
	}

	if file.MimeType == "application/vnd.google-apps.folder" {
		return nil, "", fmt.Errorf("las carpetas de Google Drive no se pueden descargar directamente")
	}

	resp, err := service.Files.Get(fileID).Download()
	if err != nil {
		return nil, "", fmt.Errorf("error descargando archivo: %w", err)
	}

	log.Printf("[GOOGLE_DRIVE] Archivo descargado: %s (%s, %d bytes)", file.Name, file.MimeType, file.Size)

	return resp.Body, file.Name, nil
}

// IsGoogleDriveURL verifica si una URL es de Google Drive
func IsGoogleDriveURL(url string) bool {
	return regexp.MustCompile(`drive\.google\.com`).MatchString(url)
}
