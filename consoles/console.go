package consoles

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/logs"
)

// Console runs a machine to halt against line based text streams.
type Console struct {
	In     io.Reader
	Out    io.Writer
	Prompt io.Writer
	Logger logs.Logger

	reader *bufio.Reader
}

func (c *Console) Run(m *intcode.Machine) error {
	for intr, err := range m.Run {
		if err != nil {
			return err
		}

		if intr.Output {
			if _, err := fmt.Fprintf(c.Out, "%d\n", intr.Value); err != nil {
				return err
			}
			continue
		}

		if intr.NeedInput {
			value, err := c.read()
			if err != nil {
				return fmt.Errorf("read input (ip %d): %w", m.IP, err)
			}
			if c.Logger != nil {
				c.Logger.Debug("input", "value", value)
			}
			m.Feed(value)
		}
	}
	return nil
}

func (c *Console) read() (int64, error) {
	if c.Prompt != nil {
		if _, err := io.WriteString(c.Prompt, "input: "); err != nil {
			return 0, err
		}
	}
	if c.reader == nil {
		c.reader = bufio.NewReader(c.In)
	}
	line, err := c.reader.ReadString('\n')
	if err == io.EOF {
		if strings.TrimSpace(line) == "" {
			return 0, io.ErrUnexpectedEOF
		}
	} else if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(line), 10, 64)
}
