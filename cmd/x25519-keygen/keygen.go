// Copyright 2026 The x25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"crypto/rand"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/curvewise/x25519"
	"golang.org/x/term"
)

const usage = `Usage:
    x25519-keygen [-o OUTPUT]
    x25519-keygen -y [INPUT]

Options:
    -o, --output OUTPUT       Write the key to the file at path OUTPUT.
    -y                        Convert a secret key file to a public key.

x25519-keygen generates a new X25519 key pair, and outputs it to standard
output or to the OUTPUT file.

If an OUTPUT file is specified, the public key is printed to standard error.
If OUTPUT already exists, it is not overwritten.

In -y mode, the INPUT file (or standard input) is read as a secret key file,
and the public key of each secret key in it is printed to the output.

Examples:

    $ x25519-keygen -o key.txt
    Public key: x255191...

    $ x25519-keygen -y key.txt
    x255191...`

// Version can be set at link time to override debug.BuildInfo.Main.Version,
// which is "(devel)" when building from within the module. See
// golang.org/issue/29814 and golang.org/issue/29228.
var Version string

func main() {
	log.SetFlags(0)
	flag.Usage = func() { fmt.Fprintf(os.Stderr, "%s\n", usage) }

	var (
		versionFlag bool
		outFlag     string
		convertFlag bool
	)

	flag.BoolVar(&versionFlag, "version", false, "print the version")
	flag.StringVar(&outFlag, "o", "", "output to `FILE` (default stdout)")
	flag.StringVar(&outFlag, "output", "", "output to `FILE` (default stdout)")
	flag.BoolVar(&convertFlag, "y", false, "convert a secret key file to a public key")
	flag.Parse()

	if versionFlag {
		if Version != "" {
			fmt.Println(Version)
			return
		}
		if buildInfo, ok := debug.ReadBuildInfo(); ok {
			fmt.Println(buildInfo.Main.Version)
			return
		}
		fmt.Println("(unknown)")
		return
	}

	if !convertFlag && len(flag.Args()) != 0 {
		log.Fatalf("x25519-keygen takes no arguments")
	}
	if convertFlag && len(flag.Args()) > 1 {
		log.Fatalf("x25519-keygen -y takes at most one argument")
	}

	out := os.Stdout
	if outFlag != "" {
		f, err := os.OpenFile(outFlag, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if err != nil {
			log.Fatalf("Failed to open output file %q: %v", outFlag, err)
		}
		defer f.Close()
		out = f
	}

	if fi, err := out.Stat(); err == nil {
		if fi.Mode().IsRegular() && fi.Mode().Perm()&0004 != 0 {
			fmt.Fprintf(os.Stderr, "Warning: writing secret key to a world-readable file.\n")
		}
	}

	if convertFlag {
		in := os.Stdin
		if len(flag.Args()) == 1 {
			f, err := os.Open(flag.Arg(0))
			if err != nil {
				log.Fatalf("Failed to open input file %q: %v", flag.Arg(0), err)
			}
			defer f.Close()
			in = f
		}
		convert(in, out)
		return
	}

	generate(out)
}

func generate(out *os.File) {
	k, err := x25519.GenerateSecretKey(rand.Reader)
	if err != nil {
		log.Fatalf("Internal error: %v", err)
	}
	defer k.Wipe()

	if !term.IsTerminal(int(out.Fd())) {
		fmt.Fprintf(os.Stderr, "Public key: %s\n", k.PublicKey())
	}

	fmt.Fprintf(out, "# created: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(out, "# public key: %s\n", k.PublicKey())
	fmt.Fprintf(out, "%s\n", k)
}

func convert(in io.Reader, out io.Writer) {
	var publicKeys []*x25519.PublicKey
	scanner := bufio.NewScanner(in)
	var n int
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, err := x25519.ParseSecretKey(line)
		if err != nil {
			log.Fatalf("Malformed secret key on line %d: %v", n, err)
		}
		publicKeys = append(publicKeys, k.PublicKey())
		k.Wipe()
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	if len(publicKeys) == 0 {
		log.Fatalf("No secret keys found in the input")
	}
	for _, p := range publicKeys {
		fmt.Fprintf(out, "%s\n", p)
	}
}
