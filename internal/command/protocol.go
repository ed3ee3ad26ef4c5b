// Package command exposes automation operations over a JSON request/response protocol.
package command

import "github.com/frudas24/deskpilot/internal/geom"

// Operation names accepted in Request.Op.
const (
	OpClickPosition     = "click_position"
	OpExecuteChessMove  = "execute_chess_move"
	OpGetMousePosition  = "get_mouse_position"
	OpMoveMouse         = "move_mouse"
	OpCaptureBoard      = "capture_board_image"
	OpCaptureFullScreen = "capture_fullscreen_image"
	OpGetClipboardText  = "get_clipboard_text"
)

// aliases maps alternate operation names onto canonical ones.
var aliases = map[string]string{
	"captureRegion":     OpCaptureBoard,
	"captureFullScreen": OpCaptureFullScreen,
	"readClipboardText": OpGetClipboardText,
}

// Error kinds produced by the command layer itself.
const (
	KindBadRequest    = "BadRequest"
	KindUnknownOp     = "UnknownOp"
	KindInputDisabled = "InputDisabled"
	KindInternal      = "Internal"
)

// Request is a single command sent by a controller.
type Request struct {
	ID   int               `json:"id"`
	Op   string            `json:"op"`
	X    *int              `json:"x,omitempty"`
	Y    *int              `json:"y,omitempty"`
	Move *geom.MoveCommand `json:"move,omitempty"`
	Area *geom.BoardArea   `json:"area,omitempty"`
	Mode string            `json:"mode,omitempty"`
}

// Response answers exactly one Request.
type Response struct {
	ID     int          `json:"id"`
	OK     bool         `json:"ok"`
	Result any          `json:"result,omitempty"`
	Error  *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail carries the failure category and a readable message.
type ErrorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// canonicalOp resolves aliases.
func canonicalOp(op string) string {
	if c, ok := aliases[op]; ok {
		return c
	}
	return op
}

// isInputOp reports whether an operation moves or clicks the pointer.
func isInputOp(op string) bool {
	switch op {
	case OpClickPosition, OpExecuteChessMove, OpMoveMouse:
		return true
	default:
		return false
	}
}
