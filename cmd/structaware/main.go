package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/structaware/structaware-go/app"
)

func main() {
	if err := app.Run(os.Args[1:]); err != nil {
		logrus.Fatal(err)
	}
}
