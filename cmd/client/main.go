package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUsage = errors.New("usage: go-blog-client [-base-url URL] [-timeout 10s] posts <username> | post <id> | version")

func main() {
	log := logger.NewClientLogger("go-blog-client")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := adapter.NewHTTPBlogClient(*cfg, log)
	if err = run(ctx, client, args, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

// run executes one command and writes its JSON result to out.
func run(ctx context.Context, client adapter.BlogClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	var result any
	switch command := args[0]; {
	case command == "version" && len(args) == 1:
		_, err := fmt.Fprint(out, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return err
	case command == "posts" && len(args) == 2:
		data, err := client.ListUserPosts(ctx, args[1])
		if err != nil {
			return fmt.Errorf("list posts of %q: %w", args[1], err)
		}
		result = data
	case command == "post" && len(args) == 2:
		post, err := client.GetPost(ctx, args[1])
		if err != nil {
			return fmt.Errorf("get post %q: %w", args[1], err)
		}
		result = post
	default:
		return errUsage
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
