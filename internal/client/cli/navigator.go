package cli

import (
	"github.com/iudanet/bloodlink/internal/client/iocli"
	"github.com/iudanet/bloodlink/internal/client/session"
)

// cliNavigator реализует session.Navigator для одноразовых команд:
// вместо переключения экранов печатает подсказку о том, что делать дальше
type cliNavigator struct {
	io iocli.IO
}

var _ session.Navigator = (*cliNavigator)(nil)

func NewNavigator(io iocli.IO) session.Navigator {
	return &cliNavigator{io: io}
}

func (n *cliNavigator) ToHome() {
	n.io.Println("You are signed in. Run 'bloodlink feed' to see emergency requests.")
}

func (n *cliNavigator) ToLogin() {
	n.io.Println("Session ended. Run 'bloodlink login' to sign in again.")
}
