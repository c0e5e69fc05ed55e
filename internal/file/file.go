// Package file - пакет с функциями для работы со статическими файлами
package file

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Kostushka/web_server/internal/log"
)

// IndexPage - файл, который отдается по запросу корня
const IndexPage = "index.html"

const defaultContentType = "text/html"

// тип содержимого определяется только по расширению файла
var contentTypes = map[string]string{
	".css":  "text/css",
	".js":   "application/javascript",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// Resolver - сопоставляет путь из строки запроса файлу в корневом каталоге
type Resolver struct {
	root string
}

// NewResolver - создать Resolver для корневого каталога
func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// Resolve - получаем путь до файла и признак его наличия на диске;
// путь строится склейкой корня и пути запроса, без декодирования
func (r *Resolver) Resolve(urlPath string) (string, bool) {
	path := r.root + urlPath
	if urlPath == "/" {
		path = r.root + "/" + IndexPage
	}

	// путь не должен выходить за пределы корневого каталога
	if !within(r.root, path) {
		log.Infof("путь %q выходит за пределы корневого каталога %q", path, r.root)
		return path, false
	}

	return path, Exists(path)
}

// Exists - файл есть на диске и это не каталог
func Exists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !fi.IsDir()
}

// ContentType - тип содержимого по расширению файла
func ContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := contentTypes[ext]; ok {
		return t
	}

	return defaultContentType
}

// Open - открываем файл по пути
func Open(path string) (*os.File, error) {
	// открываем запрашиваемый файл
	f, err := os.Open(path) //nolint:gosec

	if err != nil {
		return nil, err
	}

	return f, nil
}

// Read - читаем файл целиком: тело ответа сжимается в памяти
func Read(path string) ([]byte, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	log.Infof("прочитан файл %q: %d байт", path, len(content))

	return content, nil
}

// лежит ли path внутри root после очистки обоих путей
func within(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
