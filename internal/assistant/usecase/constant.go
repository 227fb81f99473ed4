package usecase

// Replies
const (
	msgAdded = "I've added '%s' to your todo list."

	msgNoPendingTodos   = "You don't have any pending todos right now."
	msgNoCompletedTodos = "You don't have any completed todos right now."
	msgNoTodos          = "You don't have any todos right now."
	msgPendingHeader    = "Here are your pending todos:"
	msgCompletedHeader  = "Here are your completed todos:"
	msgAllHeader        = "Here are your todos:"

	msgCompleteNoTarget = "I couldn't find a specific todo to mark as complete. Please specify which todo you want to complete."
	msgMarked           = "I've marked '%s' as %s."
	statusCompleted     = "completed"
	statusIncomplete    = "marked as incomplete"

	msgDeleteNoTarget = "I couldn't find a specific todo to delete. Please specify which todo you want to delete."
	msgDeleted        = "The todo has been deleted successfully."
	msgDeleteRefused  = "I couldn't delete that todo. It may not exist or you may not have permission to delete it."

	msgNothingToUpdate = "You don't have any todos to update."
	msgUpdateNoTitle   = "Please specify what you'd like to change the todo to."
	msgUpdated         = "I've updated the todo to '%s'."
)

// Error replies
const (
	msgCompleteRefused = "I couldn't mark that todo as complete. It may not exist or you may not have permission to change it."
	msgUpdateRefused   = "I couldn't update that todo. It may not exist or you may not have permission to change it."
	msgApology         = "I'm sorry, I encountered an error processing your request: %s"
)
