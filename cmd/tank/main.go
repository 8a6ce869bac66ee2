package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"medical-barcode-api/catalog"
	"medical-barcode-api/render"
)

type result struct {
	ok, failed atomic.Int64
}

// targets lists every example URL of the catalog under base.
func targets(base string) []string {
	c := catalog.Get()
	base = strings.TrimSuffix(base, "/")

	var urls []string
	for _, e := range []catalog.Entry{c.Code128, c.Laetus, c.SwissMedical, c.EAN13} {
		for _, ex := range e.Examples {
			urls = append(urls, base+ex.Url)
		}
	}
	return urls
}

// check accepts a 200 response whose body really is a PNG image.
func check(code int, body []byte) error {
	if code != fiber.StatusOK {
		return fmt.Errorf("status code %d", code)
	}
	if mt := mimetype.Detect(body); !mt.Is(render.ContentType) {
		return fmt.Errorf("content is %s, not %s", mt.String(), render.ContentType)
	}
	return nil
}

func sendRequest(target string, res *result) {
	code, body, errs := fiber.Get(target).Timeout(10 * time.Second).Bytes()
	if len(errs) > 0 {
		logrus.Errorf("error making http request: %v", errs)
		res.failed.Add(1)
		return
	}

	if err := check(code, body); err != nil {
		logrus.Warnf("%s: %v", path(target), err)
		res.failed.Add(1)
		return
	}
	res.ok.Add(1)
}

// path drops the query, which carries sample and patient identifiers.
func path(target string) string {
	if u, err := url.Parse(target); err == nil {
		return u.Path
	}
	return "?"
}

func run(ctx context.Context, cmd *cli.Command) error {
	var (
		wg       sync.WaitGroup
		res      result
		urls     = targets(cmd.String("addr"))
		workers  = int(cmd.Int("workers"))
		requests = int(cmd.Int("requests"))
		start    = time.Now()
	)

	for w := 0; w < workers; w++ { // number of parallel goroutines
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			for i := 0; i < requests; i++ { // number of consecutive requests
				if ctx.Err() != nil {
					return
				}
				sendRequest(urls[(w+i)%len(urls)], &res)
			}
		}(w)
	}

	wg.Wait()

	logrus.Infof("%d ok, %d failed in %s", res.ok.Load(), res.failed.Load(), time.Since(start).Round(time.Millisecond))
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "tank",
		Usage: "Replay the example requests against a running server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: "http://localhost:8000", Usage: "Server base URL"},
			&cli.IntFlag{Name: "workers", Value: 4, Usage: "Parallel clients"},
			&cli.IntFlag{Name: "requests", Value: 100, Usage: "Requests per client"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.Fatal(err)
	}
}
