package telegram

const (
	cmdStart = "/start"
	cmdHelp  = "/help"

	msgStart = "👋 Welcome to *Todo Assistant*!\n\n" +
		"Tell me what to do with your todos in plain words:\n" +
		"• _add buy milk_\n" +
		"• _show my pending todos_\n" +
		"• _mark it as done_\n" +
		"• _delete it_\n" +
		"• _update call mom tonight_\n\n" +
		"Anything else goes to the AI assistant."

	msgHelp = "*How it works:*\n\n" +
		"Complete, delete and update always act on your most recently added todo.\n" +
		"Say _pending_ or _completed_ when listing to filter."

	msgFailed = "Something went wrong while processing your message. Please try again."
)
