// Package config - пакет для получения конфигурационных данных для запуска сервера
package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"time"
)

var (
	// ErrNoRootDir - не указан путь до корневого каталога
	ErrNoRootDir = errors.New("не указан путь до *корневого* каталога")
	// ErrInvalidAddr - указан некорректный IP-адрес
	ErrInvalidAddr = errors.New("указан некорректный IP-адрес")
	// ErrInvalidTimeout - таймаут чтения запроса должен быть положительным
	ErrInvalidTimeout = errors.New("таймаут чтения запроса должен быть больше нуля")
)

const (
	portNumber  = 5000
	readTimeout = 10 * time.Second
	// ServerName - имя сервера для заголовка Server и шаблонов html
	ServerName = "Danya's Server"
)

// Data - данные для конфигурации сервера, после создания не меняются
type Data struct {
	rootPath      string
	listenAddress net.IP
	port          int
	log           string
	readTimeout   time.Duration
	serverName    string
}

// RootPath - возвращает путь до каталога, от которого отсчитываются пути запросов
func (c *Data) RootPath() string {
	return c.rootPath
}

// ListenAddress - возвращает адрес, на котором будет запущен сервер
func (c *Data) ListenAddress() net.IP {
	return c.listenAddress
}

// Port - возвращает порт, на которм сервер будет принимать запросы на соединение
func (c *Data) Port() int {
	return c.port
}

// Log - возвращает имя файла для записи лога в него или ""
func (c *Data) Log() string {
	return c.log
}

// ReadTimeout - сколько ждем строку запроса и заголовки от клиента
func (c *Data) ReadTimeout() time.Duration {
	return c.readTimeout
}

// ServerName - возвращает имя сервера
func (c *Data) ServerName() string {
	return c.serverName
}

// New - конфигурация без разбора флагов
func New(rootPath string, readTimeout time.Duration) *Data {
	return &Data{
		rootPath:      rootPath,
		listenAddress: net.IPv4(127, 0, 0, 1),
		port:          portNumber,
		readTimeout:   readTimeout,
		serverName:    ServerName,
	}
}

// NewConfigData - функция-конструктор для получения структуры с конфигурационными данными из аргументов
func NewConfigData(name string, args []string, output io.Writer) (*Data, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)

	// путь до каталога с файлами, по умолчанию - рабочий каталог процесса
	var rootPath string

	flags.StringVar(&rootPath, "path", ".", "a path to home directory")

	// адрес, на котором будет запущен сервер
	var listenAddress string

	flags.StringVar(&listenAddress, "IP", "127.0.0.1", "a listening address")

	// порт, на которм сервер будет принимать запросы на соединение
	var port int

	flags.IntVar(&port, "port", portNumber, "a port")

	// имя файла для записи лога в него, иначе вывод лога будет в stdout
	var log string

	flags.StringVar(&log, "log", "", "output log to file")

	var timeout time.Duration

	flags.DurationVar(&timeout, "timeout", readTimeout, "how long to wait for the request header")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if rootPath == "" {
		return nil, ErrNoRootDir
	}

	// IP адрес должен быть корректным
	var addr net.IP
	if addr = net.ParseIP(listenAddress); addr == nil {
		return nil, ErrInvalidAddr
	}

	if timeout <= 0 {
		return nil, ErrInvalidTimeout
	}

	return &Data{
		rootPath:      rootPath,
		listenAddress: addr,
		port:          port,
		log:           log,
		readTimeout:   timeout,
		serverName:    ServerName,
	}, nil
}
