// This tool decodes variable precision dates and prints the time range
// each one covers.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lockss/webarchive-commons/datetime"

	"github.com/m3db/m3x/log"
)

var (
	inputFile  = flag.String("inputFile", "", "optional input file with one date per line")
	printNanos = flag.Bool("printNanos", false, "additionally print the range bounds as Unix nanoseconds")

	logger = log.SimpleLogger
)

func main() {
	flag.Parse()

	dates := flag.Args()
	if len(*inputFile) > 0 {
		fileDates, err := readDates(*inputFile)
		if err != nil {
			logger.Fatalf("error reading dates from input file %s: %v", *inputFile, err)
		}
		dates = append(dates, fileDates...)
	}
	if len(dates) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	for _, str := range dates {
		d, err := datetime.Parse(str)
		if err != nil {
			logger.Fatalf("error parsing date %s: %v", str, err)
		}
		r := datetime.FromSingleInstant(d)
		start, _ := r.Start()
		end, _ := r.End()
		fmt.Printf("%s\t%v\t[%s, %s)\n",
			str, d.Granularity(),
			start.Format(time.RFC3339Nano), end.Format(time.RFC3339Nano))
		if *printNanos {
			fmt.Printf("\t\t[%d, %d)\n", start.UnixNano(), end.UnixNano())
		}
	}
}

func readDates(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var dates []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		dates = append(dates, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return dates, nil
}
