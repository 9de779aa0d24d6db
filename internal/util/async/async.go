package async

import (
	"context"
	"errors"
	"fmt"
)

// Task represents an asynchronous operation with a name and function.
type Task struct {
	Name string
	Func func(context.Context) error
}

// Run executes tasks concurrently and waits for all of them. The first
// failure cancels the context of the remaining tasks. Failures are joined
// with errors.Join in task order, each prefixed with its task name; a
// sibling that only stopped because of that cancellation is left out.
//
// Example:
//
//	tasks := []Task{
//	    {Name: "vpc", Func: provisionVPC},
//	    {Name: "bucket", Func: provisionBucket},
//	}
//	if err := Run(ctx, tasks); err != nil {
//	    return err
//	}
func Run(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	type result struct {
		index int
		err   error
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resultChan := make(chan result, len(tasks))

	for i, task := range tasks {
		go func() {
			resultChan <- result{index: i, err: task.Func(ctx)}
		}()
	}

	// Keep task order in the joined error regardless of completion order
	errs := make([]error, len(tasks))
	failed := false
	for range len(tasks) {
		res := <-resultChan
		if res.err == nil {
			continue
		}
		if failed && parent.Err() == nil && errors.Is(res.err, context.Canceled) {
			continue
		}
		errs[res.index] = fmt.Errorf("%s: %w", tasks[res.index].Name, res.err)
		failed = true
		cancel()
	}

	return errors.Join(errs...)
}
