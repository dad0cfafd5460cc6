package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/tembra/huffman"
	"github.com/tembra/huffman/hufio"
)

var log = logging.MustGetLogger("huff")

const progName = "huff"
const usageMessageRaw = `
Usage: huff OPTIONS FILE

Compress FILE with a static Huffman code, writing FILE.huff alongside it,
or decompress a self-describing FILE.huff back into FILE.

Options:
  --table, -t
	Embed the frequency table in the output so that it can be
	decompressed later with -x.  Without this the output carries only
	the bit stream and is decodable only by the session that wrote it.
  --extract, -x
	Decompress FILE.huff (which must have been written with -t)
	instead of compressing.
  --debug, -d
	Spew per-step details, including the full code table, to standard
	error.
`

const encodedSuffix = ".huff"

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var ourFlags *flag.FlagSet

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var argI int = 0

func nextArg(expected string) string {
	if !(argI < ourFlags.NArg()) {
		usageErrorf("not enough arguments; expected %s", expected)
	}
	arg := ourFlags.Arg(argI)
	argI++
	return arg
}

func endOfArgs() {
	if argI < ourFlags.NArg() {
		usageErrorf("too many arguments at %d (\"%s\")", argI, ourFlags.Arg(argI))
	}
}

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-12s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func compressFile(path string, withTable bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	log.Debugf("read %d bytes from %s", len(data), path)

	codec := huffman.New(data)
	bs := codec.Encode()
	log.Debugf("%d distinct symbols, %d payload bits", len(codec.CodeTable()), bs.Len())

	var tableDump bytes.Buffer
	_, _ = codec.CodeTable().Dump(&tableDump)
	log.Debugf("%s", tableDump.String())

	decoded, err := codec.Decode(bs)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if !bytes.Equal(decoded, data) {
		return fmt.Errorf("verify: decoded output differs from input")
	}
	log.Debugf("verified decode against the original")

	outPath := path + encodedSuffix
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if withTable {
		err = hufio.WriteArchive(out, codec.Frequencies(), bs)
	} else {
		err = hufio.WriteBitstream(out, bs)
	}
	if err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	log.Infof("wrote %s", outPath)

	fmt.Printf("Original size: %d bytes\n", len(data))
	fmt.Printf("Encoded size: %d bytes\n", len(bs.Bytes()))
	return nil
}

func extractFile(path string) error {
	if !strings.HasSuffix(path, encodedSuffix) {
		return fmt.Errorf("%s does not end in %s", path, encodedSuffix)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ft, bs, err := hufio.ReadArchive(f)
	if err != nil {
		return err
	}
	log.Debugf("read %d symbols, %d payload bits from %s", len(ft), bs.Len(), path)

	decoded, err := huffman.NewFrequencyDecoder(ft).Decode(bs)
	if err != nil {
		return err
	}
	if total := ft.Total(); total != uint64(len(decoded)) {
		return fmt.Errorf("embedded table claims %d bytes, decoded %d", total, len(decoded))
	}

	outPath := strings.TrimSuffix(path, encodedSuffix)
	if err := os.WriteFile(outPath, decoded, 0666); err != nil {
		return err
	}
	log.Infof("wrote %s", outPath)

	fmt.Printf("Decoded size: %d bytes\n", len(decoded))
	return nil
}

func main() {
	startLogging()

	ourFlags = flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var debugLogging bool
	var withTable bool
	var extract bool
	ourFlags.BoolVar(&withTable, "table", false, "")
	ourFlags.BoolVar(&withTable, "t", false, "")
	ourFlags.BoolVar(&extract, "extract", false, "")
	ourFlags.BoolVar(&extract, "x", false, "")
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	path := nextArg("FILE")
	endOfArgs()

	if extract && withTable {
		usageErrorf("-t has no effect together with -x")
	}

	var err error
	if extract {
		err = extractFile(path)
	} else {
		err = compressFile(path, withTable)
	}
	if err != nil {
		exitError(err)
	}
}
