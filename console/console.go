// Package console runs the interactive airline management menu over any
// reader/writer pair.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/airlink/airline"
	"github.com/katalvlaran/airlink/core"
	"github.com/katalvlaran/airlink/hashindex"
	"github.com/katalvlaran/airlink/ingest"
	"github.com/katalvlaran/airlink/routesort"
)

// Airline is the service surface the menu drives. *airline.Service
// implements it.
type Airline interface {
	NewQuery(origin, destination string) airline.Query
	FindRoutes(ctx context.Context, q airline.Query) ([]core.Route, error)
	Lookup(code string) (string, bool)
	ImportRoutes(r io.Reader) (ingest.Stats, error)
	AddAirport(code, name string) error
	DeleteAirport(code string) error
	IndexEntries() []hashindex.Entry[string]
	GraphDump() string
	Directory() []airline.Airport
	IndexSize() int
}

const menu = `
Airline Management System
1. Find Routes
2. Lookup Airport Information
3. Import Data from CSV
4. Add Airport
5. Delete Airport
6. Display Hash Table
7. Display Graph
8. Search Airport
9. Hash Size
0. Exit
`

// errInput marks a line that could not be parsed; the menu reports it and
// carries on.
var errInput = errors.New("invalid input")

type session struct {
	ctx context.Context
	in  *bufio.Scanner
	out io.Writer
	svc Airline
}

// Run shows the menu until the user picks 0, in is exhausted, or ctx is
// cancelled. Failed actions are reported on out and the loop continues;
// only read errors end it with an error.
func Run(ctx context.Context, in io.Reader, out io.Writer, svc Airline) error {
	s := &session{ctx: ctx, in: bufio.NewScanner(in), out: out, svc: svc}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, menu)
		choice, ok := s.prompt("Enter your choice (0-9): ")
		if !ok {
			return s.in.Err()
		}
		if choice == "0" {
			return nil
		}
		if err := s.dispatch(choice); err != nil {
			if errors.Is(err, io.EOF) {
				return s.in.Err()
			}
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

func (s *session) dispatch(choice string) error {
	switch choice {
	case "1":
		return s.findRoutes()
	case "2":
		return s.lookup()
	case "3":
		return s.importCSV()
	case "4":
		return s.addAirport()
	case "5":
		return s.deleteAirport()
	case "6":
		fmt.Fprintln(s.out, "Hash Table:")
		for _, e := range s.svc.IndexEntries() {
			fmt.Fprintf(s.out, "%s - %s\n", e.Key, e.Value)
		}
	case "7":
		fmt.Fprintln(s.out, "Graph:")
		fmt.Fprint(s.out, s.svc.GraphDump())
	case "8":
		return s.search()
	case "9":
		fmt.Fprintf(s.out, "Hash Table Size: %d\n", s.svc.IndexSize())
	default:
		fmt.Fprintln(s.out, "Invalid choice. Please try again.")
	}

	return nil
}

// prompt writes label and reads one trimmed line.
func (s *session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// ask is prompt for use inside actions: end of input becomes io.EOF.
func (s *session) ask(label string) (string, error) {
	line, ok := s.prompt(label)
	if !ok {
		return "", io.EOF
	}
	return line, nil
}

func (s *session) findRoutes() error {
	origin, err := s.ask("Enter origin airport code: ")
	if err != nil {
		return err
	}
	destination, err := s.ask("Enter destination airport code: ")
	if err != nil {
		return err
	}
	raw, err := s.ask("Enter maximum number of layovers: ")
	if err != nil {
		return err
	}
	k, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: layovers %q is not a number", errInput, raw)
	}

	q := s.svc.NewQuery(origin, destination)
	q.MaxLayovers = k
	routes, err := s.svc.FindRoutes(s.ctx, q)
	if err != nil {
		return err
	}
	if len(routes) == 0 {
		fmt.Fprintln(s.out, "No routes found.")
		return nil
	}

	fmt.Fprintln(s.out, "\nAvailable Routes:")
	pref, err := s.ask("Sort by (1) Travel Distance or (2) Number of Layovers: ")
	if err != nil {
		return err
	}
	field := routesort.ByDistance
	if pref != "1" {
		field = routesort.ByLayovers
	}
	if field != q.Field {
		q.Field = field
		if routes, err = s.svc.FindRoutes(s.ctx, q); err != nil {
			return err
		}
	}
	for _, r := range routes {
		fmt.Fprintln(s.out, r)
	}

	return nil
}

func (s *session) lookup() error {
	code, err := s.ask("Enter airport code: ")
	if err != nil {
		return err
	}
	if name, ok := s.svc.Lookup(code); ok {
		fmt.Fprintf(s.out, "Airport Information: %s\n", name)
	} else {
		fmt.Fprintln(s.out, "Airport not found.")
	}

	return nil
}

func (s *session) importCSV() error {
	name, err := s.ask("Enter filename: ")
	if err != nil {
		return err
	}
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", name, err)
	}
	defer f.Close()

	st, err := s.svc.ImportRoutes(f)
	fmt.Fprintf(s.out, "Imported %d routes, dropped %d.\n", st.Applied, st.Dropped)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", name, err)
	}

	return nil
}

func (s *session) addAirport() error {
	code, err := s.ask("Enter airport code: ")
	if err != nil {
		return err
	}
	name, err := s.ask("Enter airport name: ")
	if err != nil {
		return err
	}
	if err := s.svc.AddAirport(code, name); err != nil {
		if errors.Is(err, core.ErrGraphFull) {
			fmt.Fprintln(s.out, "Graph is full.")
			return nil
		}
		return err
	}

	return nil
}

func (s *session) deleteAirport() error {
	code, err := s.ask("Enter airport code: ")
	if err != nil {
		return err
	}
	if err := s.svc.DeleteAirport(code); err != nil {
		fmt.Fprintln(s.out, "Airport not found.")
	}

	return nil
}

// search lists directory entries whose code or name contains the term,
// ignoring case, in code order.
func (s *session) search() error {
	term, err := s.ask("Enter airport code: ")
	if err != nil {
		return err
	}
	term = strings.ToLower(term)
	found := false
	for _, a := range s.svc.Directory() {
		if term != "" && (strings.Contains(strings.ToLower(a.Code), term) ||
			strings.Contains(strings.ToLower(a.Name), term)) {
			fmt.Fprintf(s.out, "Airport Information: %s - %s\n", a.Code, a.Name)
			found = true
		}
	}
	if !found {
		fmt.Fprintln(s.out, "Airport not found.")
	}

	return nil
}
