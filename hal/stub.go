package hal

type nullUpdater struct{}

func (nullUpdater) Poll() {}

// nullLink is the wireless stub for targets without a wifi driver.
// Every connection attempt fails, which routes the firmware into its
// degraded disconnected state.
type nullLink struct{}

func (nullLink) Connect(ssid, secret string, timeoutMS int64) error { return ErrNotImplemented }
func (nullLink) Connected() bool                                    { return false }
func (nullLink) Disconnect()                                        {}
func (nullLink) StartAP(ssid, secret, ip string) error              { return ErrNotImplemented }
func (nullLink) StopAP()                                            {}

// nullRemote fails every request without opening anything.
type nullRemote struct{}

func (nullRemote) SetTimeout(ms int64)       {}
func (nullRemote) BeginGet(url string) error { return ErrNotImplemented }
func (nullRemote) IsConnected() bool         { return false }
func (nullRemote) Status() int               { return 0 }
func (nullRemote) Body() ([]byte, error)     { return nil, ErrNotImplemented }
func (nullRemote) Close()                    {}
