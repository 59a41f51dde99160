// Package console is the operator terminal: one leave board driven by typed
// commands and yes/no prompts.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"hris-console/internal/leave"
	leaveerrors "hris-console/internal/leave/errors"
	"hris-console/internal/shared/apperror"

	"go.uber.org/zap"
)

var errCancelled = errors.New("console: cancelled")

const helpText = `Commands:
  list              show the rows on screen
  refresh           reload rows from the HR store
  show <id>         show a request with balance and history
  approve <id>      approve a pending request
  reject <id>       reject a pending request
  type <type>       switch to annual, absence or sick leave
  help              print this help
  quit              leave the console
`

type Console struct {
	service leave.Service
	actor   leave.Actor
	board   *leave.Board
	prompt  *Prompter
	out     io.Writer
	logger  *zap.Logger
}

func New(service leave.Service, actor leave.Actor, leaveType leave.LeaveType, in io.Reader, out io.Writer, logger ...*zap.Logger) *Console {
	l := zap.L().Named("console")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("console")
	}
	return &Console{
		service: service,
		actor:   actor,
		board:   leave.NewBoard(service, actor, leaveType),
		prompt:  NewPrompter(in, out),
		out:     out,
		logger:  l,
	}
}

// Run loads the board and processes commands until quit, end of input or
// context cancellation.
func (c *Console) Run(ctx context.Context) error {
	c.refresh(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := c.prompt.ReadLine(fmt.Sprintf("leave/%s> ", c.board.LeaveType().Slug()))
		if err == io.EOF {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}
		if quit := c.Execute(ctx, line); quit {
			return nil
		}
	}
}

// Execute runs one command line and reports whether the console should exit.
func (c *Console) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprint(c.out, helpText)
	case "list", "ls":
		c.printRows(c.board.Rows())
	case "refresh", "r":
		c.refresh(ctx)
	case "show":
		if id, ok := c.requireID(cmd, args); ok {
			c.show(ctx, id)
		}
	case "approve":
		if id, ok := c.requireID(cmd, args); ok {
			c.approve(ctx, id)
		}
	case "reject":
		if id, ok := c.requireID(cmd, args); ok {
			c.reject(ctx, id)
		}
	case "type":
		if len(args) != 1 {
			fmt.Fprintln(c.out, "usage: type <annual|absence|sick>")
			return false
		}
		c.switchType(ctx, args[0])
	default:
		fmt.Fprintf(c.out, "unknown command %q, type help for a list\n", cmd)
	}
	return false
}

func (c *Console) requireID(cmd string, args []string) (string, bool) {
	if len(args) != 1 {
		fmt.Fprintf(c.out, "usage: %s <id>\n", cmd)
		return "", false
	}
	return args[0], true
}

func (c *Console) switchType(ctx context.Context, raw string) {
	leaveType, err := leave.ParseLeaveType(raw)
	if err != nil {
		c.printError(err)
		return
	}
	c.board = leave.NewBoard(c.service, c.actor, leaveType)
	c.refresh(ctx)
}

func (c *Console) refresh(ctx context.Context) {
	rows, err := c.board.Reload(ctx)
	if errors.Is(err, leaveerrors.ErrStaleResponse) {
		return
	}
	if err != nil {
		c.printError(err)
		return
	}
	c.printRows(rows)
}

func (c *Console) show(ctx context.Context, id string) {
	detail, err := c.board.Detail(ctx, id)
	if err != nil {
		c.printError(err)
		return
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\n", detail.ID)
	fmt.Fprintf(w, "Employee\t%s\n", detail.Employee.Name)
	fmt.Fprintf(w, "Status\t%s\n", detail.Status)
	fmt.Fprintf(w, "Dates\t%s to %s\n", detail.StartDate, detail.EndDate)
	fmt.Fprintf(w, "Duration\t%d %s\n", detail.CurrentLeaveDuration, strings.ToLower(detail.CurrentLeaveDurationUnit))
	fmt.Fprintf(w, "Reason\t%s\n", detail.Reason)
	if detail.Location != "" {
		fmt.Fprintf(w, "Location\t%s\n", detail.Location)
	}
	if detail.SubstituteID != "" {
		fmt.Fprintf(w, "Substitute\t%s\n", detail.SubstituteID)
	}
	for _, u := range detail.AttachmentURLs {
		fmt.Fprintf(w, "Attachment\t%s\n", u)
	}
	fmt.Fprintf(w, "Balance\t%d of %d days used, %d remaining\n",
		detail.Balance.UsedDays, detail.Balance.TotalAllowance, detail.Balance.RemainingDays)
	w.Flush()

	if len(detail.History) == 0 {
		fmt.Fprintln(c.out, "No approved history.")
		return
	}
	fmt.Fprintln(c.out, "History:")
	hw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	for _, h := range detail.History {
		fmt.Fprintf(hw, "  %s\t%s\t%s\n", h.DateRangeLabel, h.DurationLabel, h.Status)
	}
	hw.Flush()
}

func (c *Console) approve(ctx context.Context, id string) {
	if err := c.board.CheckDecision(id, leave.DecisionApprove); err != nil {
		c.printError(err)
		return
	}
	var sub *leave.Substitute
	if c.board.LeaveType().RequiresSubstitute() {
		picked, err := c.pickSubstitute(ctx)
		if errors.Is(err, errCancelled) {
			fmt.Fprintln(c.out, "Approval cancelled.")
			return
		}
		if err != nil {
			c.printError(err)
			return
		}
		sub = picked
	}

	out, err := c.board.Approve(ctx, id, sub, c.prompt)
	c.reportOutcome(id, "approved", out, err)
}

func (c *Console) reject(ctx context.Context, id string) {
	out, err := c.board.Reject(ctx, id, c.prompt)
	c.reportOutcome(id, "rejected", out, err)
}

func (c *Console) reportOutcome(id, verb string, out leave.MutationOutcome, err error) {
	if !out.Applied {
		if err != nil {
			c.printError(err)
			return
		}
		fmt.Fprintln(c.out, "Nothing changed.")
		return
	}

	fmt.Fprintf(c.out, "Leave %s %s.\n", id, verb)
	if err != nil {
		c.logger.Warn("reload after decision failed", zap.String("leave_id", id), zap.Error(err))
		fmt.Fprintln(c.out, "The list could not be refreshed; run refresh to try again.")
		return
	}
	c.printRows(out.Rows)
}

// pickSubstitute searches employees by name until the operator picks one or
// submits an empty search term.
func (c *Console) pickSubstitute(ctx context.Context) (*leave.Substitute, error) {
	for {
		term, err := c.prompt.ReadLine(fmt.Sprintf("Search substitute by name (min %d chars, empty to cancel): ", leave.MinSearchLength))
		if err == io.EOF || (err == nil && term == "") {
			return nil, errCancelled
		}
		if err != nil {
			return nil, err
		}
		if len([]rune(term)) < leave.MinSearchLength {
			fmt.Fprintf(c.out, "Enter at least %d characters.\n", leave.MinSearchLength)
			continue
		}

		found, err := c.board.SearchSubstitutes(ctx, term)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			fmt.Fprintln(c.out, "No employees found.")
			continue
		}

		for i, e := range found {
			fmt.Fprintf(c.out, "  %d) %s\n", i+1, e.FullName())
		}
		choice, err := c.prompt.ReadLine(fmt.Sprintf("Choose 1-%d (empty to search again): ", len(found)))
		if err == io.EOF {
			return nil, errCancelled
		}
		if err != nil {
			return nil, err
		}
		if choice == "" {
			continue
		}
		n, convErr := strconv.Atoi(choice)
		if convErr != nil || n < 1 || n > len(found) {
			fmt.Fprintln(c.out, "Invalid choice.")
			continue
		}
		e := found[n-1]
		return &leave.Substitute{EmployeeID: e.ID, Name: e.FullName()}, nil
	}
}

func (c *Console) printRows(rows []leave.DisplayRow) {
	if len(rows) == 0 {
		fmt.Fprintln(c.out, "No leave requests.")
		return
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMPLOYEE\tSTART\tEND\tDURATION\tDAYS\tSTATUS")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			r.ID, r.EmployeeName, r.StartDate, r.EndDate, r.DurationLabel, r.TotalDays, r.Status)
	}
	w.Flush()
}

func (c *Console) printError(err error) {
	httpErr := apperror.ToHTTP(err)
	c.logger.Debug("command failed", zap.String("code", httpErr.Code), zap.Error(err))
	fmt.Fprintf(c.out, "error: %s\n", httpErr.Message)
}
