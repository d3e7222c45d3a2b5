package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paologalligit/showtime/entities"
	"github.com/paologalligit/showtime/ticket"
	"go.uber.org/zap"
)

const (
	OPTION_EXIT    = 0
	OPTION_GUEST   = 1
	OPTION_MANAGER = 2
)

type Options struct {
	In       io.Reader
	Out      io.Writer
	Lineup   *entities.Lineup
	Logger   *zap.Logger
	TicketQR bool
	// Codes overrides the random source for confirmation codes.
	Codes entities.CodeSource
}

// Menu is the interactive console session. It owns no theatre state; every
// booking goes through the lineup it was given.
type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	lineup   *entities.Lineup
	logger   *zap.Logger
	ticketQR bool
	codes    entities.CodeSource
}

func New(options *Options) *Menu {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{
		in:       bufio.NewScanner(options.In),
		out:      options.Out,
		lineup:   options.Lineup,
		logger:   logger,
		ticketQR: options.TicketQR,
		codes:    options.Codes,
	}
}

// Run drives the session until the user exits or input ends, returning nil
// in both cases.
func (m *Menu) Run(ctx context.Context) error {
	m.println("\tWelcome to SuperBlicks ShowTime Central $1 Theatre!\t")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		option, err := m.mainMenu()
		if err == nil {
			switch option {
			case OPTION_GUEST:
				err = m.reservation()
			case OPTION_MANAGER:
				err = m.managerReport()
			case OPTION_EXIT:
				m.println("\nExiting..")
				return nil
			default:
				m.println("Invalid option.")
			}
		}
		if errors.Is(err, io.EOF) {
			m.logger.Info("input closed, leaving menu")
			m.println("\nExiting..")
			return nil
		}
		if err != nil {
			return err
		}
		m.println()
	}
}

func (m *Menu) mainMenu() (int, error) {
	m.println("1. Guest reservation")
	m.println("2. Manager report")
	m.println("0. Exit")
	m.printf("Enter option: ")
	line, err := m.readLine()
	if err != nil {
		return 0, err
	}
	option, err := strconv.Atoi(line)
	if err != nil {
		return -1, nil
	}
	return option, nil
}

func (m *Menu) reservation() error {
	m.println()
	m.printf("Enter your name: ")
	name, err := m.readLine()
	if err != nil {
		return err
	}
	customer := m.newCustomer(name)

	theatre, err := m.chooseTheatre()
	if err != nil {
		return err
	}
	if theatre == nil {
		return nil
	}

	if theatre.IsFull() {
		m.println("The selected theatre is fully booked.")
		m.logger.Debug("booking refused, theatre full", zap.String("movie", theatre.Movie))
		return nil
	}

	for {
		m.printf("Choose seat number: ")
		line, err := m.readLine()
		if err != nil {
			m.logger.Debug("booking abandoned", zap.String("movie", theatre.Movie), zap.String("customer", customer.Name))
			return err
		}
		m.println()

		seat, err := strconv.Atoi(line)
		if err != nil {
			m.println("Invalid seat number. Try again.")
			continue
		}
		if !theatre.BookSeat(seat, customer) {
			m.logger.Debug("seat unavailable", zap.String("movie", theatre.Movie), zap.Int("seat", seat))
			m.println("The seat you selected is unavailable. Try again.")
			continue
		}

		m.logger.Info("seat booked",
			zap.String("movie", theatre.Movie),
			zap.Int("seat", seat),
			zap.Int("code", customer.Code),
		)
		m.println("Seat booked successfully.")
		m.printf("Your code is %d\n", customer.Code)
		m.printTicket(theatre.Movie, seat, customer)
		m.println()
		return nil
	}
}

func (m *Menu) managerReport() error {
	theatre, err := m.chooseTheatre()
	if err != nil || theatre == nil {
		return err
	}
	m.println()
	return theatre.WriteReport(m.out)
}

// chooseTheatre lists the lineup and reads a selection. A nil theatre with a
// nil error means the selection was rejected and reported to the user.
func (m *Menu) chooseTheatre() (*entities.Theatre, error) {
	m.println("\nAvailable theatres: ")
	for i, t := range m.lineup.Theatres() {
		m.printf("\t%d. %s -- %d seats.\n", i+1, t.Movie, t.NumSeats())
	}
	m.printf("\nChoose theatre: ")
	line, err := m.readLine()
	if err != nil {
		return nil, err
	}

	choice, err := strconv.Atoi(line)
	if err != nil {
		m.println("Invalid theatre selection.")
		return nil, nil
	}
	theatre, err := m.lineup.Select(choice)
	if errors.Is(err, entities.ErrTheatreNotFound) {
		m.logger.Debug("theatre selection rejected", zap.Error(err))
		m.println("Invalid theatre selection.")
		return nil, nil
	}
	return theatre, err
}

func (m *Menu) printTicket(movie string, seat int, customer *entities.Customer) {
	if !m.ticketQR {
		return
	}
	out, err := ticket.Render(movie, seat, customer)
	if err != nil {
		m.logger.Warn("failed to render ticket", zap.Error(err))
		return
	}
	m.println()
	m.printf("%s", out)
}

func (m *Menu) newCustomer(name string) *entities.Customer {
	if m.codes == nil {
		return entities.NewCustomer(name)
	}
	return entities.NewCustomerWithSource(name, m.codes)
}

// readLine returns the next trimmed line, or io.EOF once input is exhausted.
func (m *Menu) readLine() (string, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) println(args ...any) {
	fmt.Fprintln(m.out, args...)
}
