package logs

import (
	"context"
	"errors"
	"fmt"
)

func WrapRun(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v := ctx.Value(RunKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("run: %s", v.(Run)))
}
