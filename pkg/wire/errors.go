package wire

import "fmt"

// RPCError is returned by the backend instead of a reply.
type RPCError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

func (*RPCError) TypeName() string { return "rpc_error" }

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error code %d: %s", e.Code, e.Message)
}
