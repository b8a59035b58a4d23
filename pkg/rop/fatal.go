package rop

import (
	"os"

	"github.com/ib-77/monads/internal/logging"
)

const (
	optionType = "Option"
	resultType = "Result"
)

// abort reports a programmer error and terminates the process. The fatal
// entry runs the logger's fatal hook; os.Exit covers a hook that returns.
func abort(msg, container, operation, variant string, fields ...logging.Field) {
	fields = append(fields,
		logging.String("container", container),
		logging.String("operation", operation),
		logging.String("variant", variant),
	)

	logging.New().Fatal("PANIC: "+msg, fields...)
	os.Exit(1)
}

func wrongVariant(container, operation, variant string) string {
	article := "a"
	if variant == "Ok" || variant == "Err" {
		article = "an"
	}
	return "called " + container + "." + operation + " on " + article + " " + variant + " value"
}

func errField(err any) logging.Field {
	return logging.Any("error", err)
}

func valueField(value any) logging.Field {
	return logging.Any("value", value)
}
