package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-data-generator/internal/usecases/authenticating"
)

// Lê a senha da entrada padrão e imprime o valor para AUTH_ADMIN_PASSWORD_HASH
func main() {
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil && password == "" {
		logrus.WithError(err).Fatal("Erro ao ler a senha")
	}

	hash, err := authenticating.HashPassword(strings.TrimRight(password, "\r\n"))
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar hash da senha")
	}

	fmt.Println(hash)
}
