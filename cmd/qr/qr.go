package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/unixdj/qr53"

	"github.com/caarlos0/env/v11"
	fcolor "github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/text/encoding/charmap"
)

// config holds defaults taken from the environment.
type config struct {
	Scale  uint   `env:"QR_SCALE" envDefault:"4"`
	Border int    `env:"QR_BORDER" envDefault:"4"`
	Type   string `env:"QR_TYPE"`
}

var g = struct {
	scale   int             // scale
	border  int             // quiet zone
	mask    qr.Mask         // mask pattern
	palette *[2]color.Color // palette
	rev     bool            // reverse colours
	fn      string          // filename
	format  int             // output file format
	bg, fg  rgba            // colour
	colSet  bool            // colour set
	latin1  bool            // Latin-1 byte mode
	nocolor bool            // no terminal colours
	tty     bool            // output is a terminal
}{
	bg: rgba{0xff, 0xff, 0xff, 0xff},
	fg: rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR code generator (version 3-L, up to ",
		qr.MaxLength, " bytes)\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Input bytes are encoded unchanged unless -1 is
given.  Environment variables QR_SCALE, QR_BORDER and QR_TYPE set the
defaults for -s, -m and -t.

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

type rgba struct {
	R, G, B, A uint8
}

func (c *rgba) String() string {
	if *c == (rgba{0x00, 0x00, 0x00, 0xff}) {
		return "black"
	} else if *c == (rgba{0xff, 0xff, 0xff, 0xff}) {
		return "white"
	} else if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	} else {
		return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	g.colSet = true
	name := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if v, ok := colornames.Map[name]; ok {
		*c = rgba(v)
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

var formats = []string{
	"png", "pngi", "PNG", "PNGi", "pbm", "pbmi", "svg", "svgi",
	"svgembed", "svgembedi", "eps", "epsi",
	"utf8", "utf8i", "ascii", "asciii", "text", "texti",
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	(*qr.Code).EncodePNG,
	func(c *qr.Code, w io.Writer) error {
		img := c.Image()
		if img == nil {
			return qr.ErrArgs
		}
		return png.Encode(w, img)
	},
	(*qr.Code).EncodePBM,
	func(c *qr.Code, w io.Writer) error {
		s, err := c.SVG()
		if err == nil {
			_, err = io.WriteString(w, s)
		}
		return err
	},
	svgEmbed,
	eps,
	utf8,
	ascii,
	text,
}

// isText reports whether format f is written as terminal text.
func isText(f int) bool { return f >= 6 }

// selectFormat returns the encoder index for output type name and
// whether the type inverts colours.
func selectFormat(name string) (format int, rev, ok bool) {
	for i, v := range formats {
		if name == v {
			return i >> 1, i&1 != 0, true
		}
	}
	return -1, false, false
}

const maxScale = 1 << 12

// loadConfig reads the defaults from the environment.
func loadConfig() (config, error) {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		return cfg, err
	}
	if cfg.Scale < 1 || cfg.Scale > maxScale {
		return cfg, fmt.Errorf("QR_SCALE=%d: must be 1 to %d",
			cfg.Scale, maxScale)
	}
	if cfg.Border < 0 {
		return cfg, errors.New("QR_BORDER: negative margin")
	}
	if cfg.Type != "" {
		if _, _, ok := selectFormat(cfg.Type); !ok {
			return cfg, fmt.Errorf("QR_TYPE=%q: unknown output format",
				cfg.Type)
		}
	}
	return cfg, nil
}

func parseFlags() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalln(err)
	}

	g.border = cfg.Border
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or SVG colour name; `+
		`only for types png[i], PNG[i], svg[i], svgembed[i] and eps[i]`,
		"RGB[A]|name")
	getopt.Flag(&g.latin1, '1', "convert UTF-8 input to Latin-1")
	getopt.Flag(&g.nocolor, 'n', "do not colour utf8 output on a terminal")
	getopt.Flag(&g.border, 'm', `quiet zone modules [$QR_BORDER or 4]`,
		"margin")
	getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	mask := getopt.Signed('k', -1, &getopt.SignedLimit{Base: 0, Bits: 8, Min: -1, Max: 7},
		"mask pattern, 0 to 7; default: lowest penalty", "mask")
	scale := getopt.Unsigned('s', uint64(cfg.Scale),
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: maxScale}),
		`image pixels (type eps[i]: points) per QR module; `+
			`ignored for text types`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`"png" uses the standard Go encoder at best compression, `+
		`"PNG" at default compression; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	g.scale = int(*scale)
	g.mask = qr.Mask(*mask)
	if g.border < 0 {
		fmt.Fprintln(os.Stderr, "negative margin")
		usage()
	}
	if g.fn == "-" {
		g.fn = ""
	}
	g.tty = g.fn == "" && isatty.IsTerminal(os.Stdout.Fd())
	if *ff == "" {
		*ff = cfg.Type
	}
	if *ff == "" {
		if g.tty {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	var ok bool
	if g.format, g.rev, ok = selectFormat(*ff); !ok {
		fmt.Fprintf(os.Stderr, "%q: unknown output format\n", *ff)
		usage()
	}
	g.palette = palette()
}

// palette returns the colours set with -B and -F, or nil.
func palette() *[2]color.Color {
	if !g.colSet {
		return nil
	}
	return &[2]color.Color{color.NRGBA(g.bg), color.NRGBA(g.fg)}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}

	var err error
	if g.latin1 {
		if s, err = latin1(s); err != nil {
			log.Fatalln(err)
		}
	}
	var c *qr.Code
	if g.mask == qr.AutoMask {
		c, err = qr.Encode(s)
	} else {
		c, err = qr.EncodeMask(s, g.mask)
	}
	if err != nil {
		log.Fatalln(err)
	}
	write(c)
}

// latin1 converts UTF-8 text to Latin-1.
func latin1(s string) (string, error) {
	s, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return "", qr.ErrNotLatin1
	}
	return s, nil
}

func write(c *qr.Code) {
	open := g.fn != ""
	var w io.Writer = os.Stdout
	var f *os.File
	if open {
		var err error
		if f, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
		w = f
	}
	c.Scale = g.scale
	c.Border = g.border
	c.Palette = g.palette
	c.Reverse = g.rev
	if g.tty && !g.nocolor && !fcolor.NoColor && isText(g.format) {
		w = &colorWriter{w: w, c: fcolor.New(fcolor.FgHiWhite, fcolor.BgBlack)}
	}
	err := encoders[g.format](c, w)
	if open && err == nil {
		err = f.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// colorWriter colours each line written to it, leaving newlines
// uncoloured.
type colorWriter struct {
	w io.Writer
	c *fcolor.Color
}

func (cw *colorWriter) Write(p []byte) (int, error) {
	n := len(p)
	var b strings.Builder
	for len(p) != 0 {
		line, rest, nl := bytes.Cut(p, []byte{'\n'})
		if len(line) != 0 {
			b.WriteString(cw.c.Sprint(string(line)))
		}
		if nl {
			b.WriteByte('\n')
		}
		p = rest
	}
	if _, err := io.WriteString(cw.w, b.String()); err != nil {
		return 0, err
	}
	return n, nil
}

func svgEmbed(c *qr.Code, w io.Writer) error {
	s, err := c.EmbedSVG()
	if err == nil {
		_, err = io.WriteString(w, s)
	}
	return err
}

func eps(c *qr.Code, w io.Writer) error {
	const midx, midy = 306, 396
	siz := c.Size()
	scale := c.Scale
	bord := c.Border
	xorig := (midx*2 - (siz+2*bord)*scale) / 2
	yorig := (midy*2 - (siz+2*bord)*scale) / 2
	fmt.Fprintf(w, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: QR https://github.com/unixdj/qr53
%%%%Title: QR Code
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
%g %g translate
%d dup neg scale
/row 0 def
/p { 0 rmoveto 0 rlineto } def
/r { 0 row 1 add dup /row exch def moveto } def
`,
		xorig-1, yorig-1, midx*2-xorig, midy*2-yorig,
		midx-float64(siz*scale)/2, midy+float64((siz-1)*scale)/2-1,
		scale)
	if rev := c.Reverse; rev || g.colSet {
		bg, fg := g.bg, g.fg
		if rev {
			bg, fg = fg, bg
		}
		fmt.Fprintf(w, `gsave
newpath %d %d moveto
%d dup neg scale
%.3g %.3g %.3g setrgbcolor
1 0 rlineto stroke
grestore
%.3g %.3g %.3g setrgbcolor
`,
			-bord, siz/2, siz+2*bord,
			float64(bg.R)/0xff, float64(bg.G)/0xff,
			float64(bg.B)/0xff, float64(fg.R)/0xff,
			float64(fg.G)/0xff, float64(fg.B)/0xff)
	}
	fmt.Fprintln(w, "newpath 0 0 moveto")
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; {
			s := x
			for x < siz && !c.Black(x, y) {
				x++
			}
			if x == siz {
				break
			}
			b := x
			for x < siz && c.Black(x, y) {
				x++
			}
			fmt.Fprintf(w, "%d %d p ", x-b, b-s)
		}
		fmt.Fprintln(w, "r")
	}
	_, err := io.WriteString(w, "stroke grestore\nend\n%%Trailer\n")
	return err
}

func utf8(c *qr.Code, w io.Writer) error {
	_, err := fmt.Fprint(w, c)
	return err
}

func ascii(c *qr.Code, w io.Writer) error {
	dark, light := "##", "  "
	if c.Reverse {
		dark, light = light, dark
	}
	r := qr.TextRenderer{Dark: dark, Light: light, Border: c.Border}
	_, err := io.WriteString(w, r.Render(c))
	return err
}

func text(c *qr.Code, w io.Writer) error {
	dark, light := "#", "."
	if c.Reverse {
		dark, light = light, dark
	}
	r := qr.TextRenderer{Dark: dark, Light: light, Border: c.Border}
	_, err := io.WriteString(w, r.Render(c))
	return err
}
