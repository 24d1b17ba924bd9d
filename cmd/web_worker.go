package main

import (
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/Kostushka/web_worker/internal/config"
	"github.com/Kostushka/web_worker/internal/connection"
	"github.com/Kostushka/web_worker/internal/log"
)

func main() {
	// получить конфигурационные данные
	configData, err := config.NewConfigData(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}

	// создать логеры
	if err = log.New(configData.Log()); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	// пути запросов не могут выйти за пределы корневого каталога
	root := osfs.New(configData.RootPath(), osfs.WithBoundOS())

	// объявляем структуру с данными будущего сервера
	laddr := net.TCPAddr{
		IP:   configData.ListenAddress(),
		Port: configData.Port(),
	}

	// получаем структуру с методами для работы с соединениями
	l, err := net.ListenTCP("tcp", &laddr)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	// по сигналу закрываем сокет, цикл приема соединений завершится
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-stop
		log.Infof("получен сигнал %s, сервер останавливается", sig)
		connection.Close(l, "tcp сокет закрыт")
	}()

	log.Infof("запуск сервера с адресом %v на порту %d, корневой каталог %q",
		laddr.IP, laddr.Port, configData.RootPath())

	for {
		// слушаем сокетные соединения (запросы)
		conn, err := l.AcceptTCP()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}

			log.Error(err)

			continue
		}

		log.Infof("запрос на соединение от клиента %s принят", conn.RemoteAddr().String())

		// обрабатываем каждое клиентское соединение в отдельной горутине
		go connection.New(conn, root, configData).ProcessingConn()
	}
}
