package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dargueta/rle8"
	"github.com/dargueta/rle8/compression"
	"github.com/urfave/cli/v2"
)

func newApp(errWriter io.Writer) *cli.App {
	return &cli.App{
		Name:      "rle8",
		Usage:     "Compress and expand files with RLE8 run-length encoding",
		ErrWriter: errWriter,
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Run-length encode a file",
				ArgsUsage: "INPUT  OUTPUT",
				Action:    encodeFile,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "print size statistics to stderr when done",
						EnvVars: []string{"RLE8_VERBOSE"},
					},
				},
			},
			{
				Name:      "decode",
				Usage:     "Expand a run-length encoded file",
				ArgsUsage: "INPUT  OUTPUT",
				Action:    decodeFile,
			},
		},
	}
}

func encodeFile(context *cli.Context) error {
	inputPath, outputPath, err := getPaths(context)
	if err != nil {
		return err
	}

	raw, err := readFile(inputPath)
	if err != nil {
		return err
	}

	encoded := compression.Encode(raw)
	err = writeFile(outputPath, encoded)
	if err != nil {
		return err
	}

	if context.Bool("verbose") {
		return compression.NewStats(raw, encoded).WriteReport(context.App.ErrWriter)
	}
	return nil
}

func decodeFile(context *cli.Context) error {
	inputPath, outputPath, err := getPaths(context)
	if err != nil {
		return err
	}

	encoded, err := readFile(inputPath)
	if err != nil {
		return err
	}

	decoded, err := compression.Decode(encoded)
	if err != nil {
		return fmt.Errorf("failed to decode `%s`: %w", inputPath, err)
	}
	return writeFile(outputPath, decoded)
}

func getPaths(context *cli.Context) (string, string, error) {
	if context.Args().Len() != 2 {
		return "", "", rle8.ErrInvalidArgument.WithMessage(
			fmt.Sprintf(
				"%s: expected 2 arguments (INPUT OUTPUT), got %d",
				context.Command.Name,
				context.Args().Len(),
			),
		)
	}
	return context.Args().Get(0), context.Args().Get(1), nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rle8.ErrIOFailed.Wrap(err).WithMessage(
			fmt.Sprintf("failed to open file for reading: `%s`", path))
	}
	return data, nil
}

func writeFile(path string, data []byte) error {
	err := os.WriteFile(path, data, 0o644)
	if err != nil {
		return rle8.ErrIOFailed.Wrap(err).WithMessage(
			fmt.Sprintf("failed to write file: `%s`", path))
	}
	return nil
}
