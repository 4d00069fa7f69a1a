// +build windows

package ssh

// SSH server is unsupported on Windows

type Server struct {
	ListenAddress string
	ClientBinary  string
}

func (s *Server) Host() {
}
