package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		logrus.Fatal(err)
	}
}
