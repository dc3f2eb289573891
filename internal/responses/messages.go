package responses

func GetPasscodeErrorMessage() string {
	return `
		<div id="passcode-error" hx-swap-oob="innerHTML">
			<p class="text-red-400 text-center">%v</p>
		</div>
	`
}
