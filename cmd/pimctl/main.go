// cmd/pimctl/main.go
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("pimctl failed")
		os.Exit(1)
	}
}
