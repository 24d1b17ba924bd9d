// Package resource - пакет для сопоставления пути запроса с файлом и его типом
package resource

import (
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/Kostushka/web_worker/internal/log"
)

// DefaultContentType - тип файла, расширения которого нет в таблице
const DefaultContentType = "application/octet-stream"

// HTMLContentType - тип html файлов, в них подставляются имя сервера и дата
const HTMLContentType = "text/html"

// расширения сравниваются с учетом регистра
var contentTypes = []struct {
	ext         string
	contentType string
}{
	{".html", HTMLContentType},
	{".jpg", "image/jpeg"},
	{".jpeg", "image/jpeg"},
	{".png", "image/png"},
	{".gif", "image/gif"},
	{".ico", "image/x-icon"},
}

// Resource - найденный файл или его отсутствие
type Resource struct {
	found       bool
	path        string
	contentType string
}

// NotFound - файла нет
var NotFound = Resource{}

// Found - создать ресурс для существующего файла
func Found(path, contentType string) Resource {
	return Resource{
		found:       true,
		path:        path,
		contentType: contentType,
	}
}

func (r Resource) IsFound() bool {
	return r.found
}

func (r Resource) Path() string {
	return r.path
}

func (r Resource) ContentType() string {
	return r.contentType
}

// Binary - тело копируется как есть, без подстановок
func (r Resource) Binary() bool {
	return r.contentType != HTMLContentType
}

// ContentType - тип файла по расширению и признак того, что расширение известно
func ContentType(name string) (string, bool) {
	for _, v := range contentTypes {
		if strings.HasSuffix(name, v.ext) {
			return v.contentType, true
		}
	}

	return DefaultContentType, false
}

// Resolver - ищет файлы запросов в файловой системе
type Resolver struct {
	fs billy.Filesystem
}

// New - создать Resolver поверх файловой системы
func New(fs billy.Filesystem) *Resolver {
	return &Resolver{fs: fs}
}

// Filesystem - файловая система, в которой ищутся файлы
func (r *Resolver) Filesystem() billy.Filesystem {
	return r.fs
}

// Resolve - сопоставить путь запроса с файлом; ok == false, если пути в запросе не было
func (r *Resolver) Resolve(name string, ok bool) Resource {
	if !ok || name == "" {
		return NotFound
	}
	// выход за пределы корневого каталога запрещен
	if escapesRoot(name) {
		log.Errorf("путь %q выходит за пределы корневого каталога", name)

		return NotFound
	}

	fi, err := r.fs.Stat(name)
	if err != nil {
		log.Infof("файл %q не найден: %v", name, err)

		return NotFound
	}
	// каталоги не отдаем
	if fi.IsDir() {
		log.Infof("файл %q: is a directory", name)

		return NotFound
	}

	contentType, known := ContentType(name)
	if !known {
		log.Infof("расширение файла %q неизвестно, отдаем как %s", name, contentType)
	}

	return Found(name, contentType)
}

func escapesRoot(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return true
		}
	}

	return false
}
