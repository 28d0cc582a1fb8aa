package exceptions

import (
	"errors"
	"fmt"

	"github.com/getsentry/raven-go"
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
)

type ExceptionsModule struct {
	ErrorService *raven.Client   `inject:""`
	Logger       *logging.Logger `inject:""`
}

// Boot builds a module reporting to dsn. An empty dsn keeps the client
// disabled, so reports only reach the log.
func Boot(dsn string, logger *logging.Logger) (*ExceptionsModule, error) {
	client, err := raven.NewClient(dsn, map[string]string{"service": "storefront"})
	if err != nil {
		return nil, err
	}
	return &ExceptionsModule{ErrorService: client, Logger: logger}, nil
}

// Capture reports err with tags. Safe to use as a storage error hook.
func (di *ExceptionsModule) Capture(err error, tags map[string]string) {
	if err == nil {
		return
	}
	if di.Logger != nil {
		di.Logger.Error(err)
	}
	if di.ErrorService != nil {
		di.ErrorService.CaptureError(err, tags)
	}
}

// StorageHook adapts Capture to the cart's error hook signature.
func (di *ExceptionsModule) StorageHook(component string) func(error) {
	return func(err error) {
		di.Capture(err, map[string]string{"component": component})
	}
}

// Recover must be deferred directly. It reports and swallows a panic.
func (di *ExceptionsModule) Recover() {
	var packet *raven.Packet

	switch rval := recover().(type) {
	case nil:
		return
	case error:
		packet = raven.NewPacket(rval.Error(), raven.NewException(rval, raven.NewStacktrace(2, 3, nil)))
	default:
		rvalStr := fmt.Sprint(rval)
		packet = raven.NewPacket(rvalStr, raven.NewException(errors.New(rvalStr), raven.NewStacktrace(2, 3, nil)))
	}

	// Grab the error and send it to sentry
	if di.Logger != nil {
		di.Logger.Critical(packet.Message)
	}
	if di.ErrorService != nil {
		di.ErrorService.Capture(packet, map[string]string{})
	}
}

// ErrorTracking reports panics raised by handlers and answers 500.
func (di *ExceptionsModule) ErrorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rval := recover(); rval != nil {
				err, ok := rval.(error)
				if !ok {
					err = fmt.Errorf("%v", rval)
				}
				di.Capture(err, map[string]string{"path": c.Request.URL.Path})
				c.AbortWithStatusJSON(500, gin.H{"status": "error", "message": "internal error"})
			}
		}()
		c.Next()
	}
}
