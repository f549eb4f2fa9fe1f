package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/entregas-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
         _____       _                                
        | ____|_ __ | |_ _ __ ___  __ _  __ _ ___     
        |  _| | '_ \| __| '__/ _ \/ _' |/ _' / __|    
        | |___| | | | |_| | |  __/ (_| | (_| \__ \    
        |_____|_| |_|\__|_|  \___|\__, |\__,_|___/    
                                  |___/               
         ____            _     _                         _ 
        |  _ \  __ _ ___| |__ | |__   ___   __ _ _ __ __| |
        | | | |/ _' / __| '_ \| '_ \ / _ \ / _' | '__/ _' |
        | |_| | (_| \__ \ | | | |_) | (_) | (_| | | | (_| |
        |____/ \__,_|___/_| |_|_.__/ \___/ \__,_|_|  \__,_|
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Entregas Dashboard CLI (v%s)", formattedVersion)))
}
