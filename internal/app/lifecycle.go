package app

// Run shows the window and blocks on the GUI event loop.
func (a *Application) Run() {
	a.log.Info("Application", "showing main window", nil)
	a.window.ShowAndRun()
}

// Quit stops components in order and ends the event loop.
func (a *Application) Quit() {
	a.shutdown.Shutdown()
	a.fyneApp.Quit()
}
