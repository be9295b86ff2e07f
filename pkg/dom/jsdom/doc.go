// Package jsdom is the browser host document, reached through syscall/js.
//
// It is only compiled for GOOS=js GOARCH=wasm:
//
//	doc, err := jsdom.New("app")
//	if err != nil {
//	    panic(err)
//	}
//	errors.SetHandler(jsdom.ConsoleHandler{})
//	navigation.Mount(doc, router)
//	select {}
package jsdom
