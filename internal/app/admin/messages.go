package admin

const (
  textAccessDenied = "У вас нет доступа к этой команде."
  textFailed       = "Не удалось выполнить команду. Попробуйте позже."
  textNoOrders     = "Нет доступных заказов."

  textStatusUsage   = "Использование: /status <id_заказа> <новый_статус>"
  textStatusUpdated = "Статус заказа #%d обновлен на '%s'"
  textStatusFailed  = "Не удалось обновить статус заказа #%d"
  textStatusPing    = "Статус заказа #%d изменен на '%s'"

  textNoteUsage  = "Использование: /note <id_заказа> <текст_заметки>"
  textNoteAdded  = "Заметка добавлена к заказу #%d"
  textNoteFailed = "Не удалось добавить заметку к заказу #%d"

  textHelp = `Команды администратора:
/orders - список всех заказов
/status <id_заказа> <новый_статус> - изменить статус заказа
/note <id_заказа> <текст_заметки> - добавить заметку к заказу
/help - эта справка`
)
