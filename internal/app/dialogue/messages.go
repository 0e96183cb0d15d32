package dialogue

const (
  textWelcome        = "Здравствуйте! Я помогу оформить заказ сумки или подстаканника из бусин. Нажмите «Оформить заказ», чтобы начать."
  textChooseProduct  = "Какой продукт вы хотите заказать?"
  textChooseSize     = "Пожалуйста, выберите размер сумки:"
  textChooseShape    = "Выберите форму сумки:"
  textChooseMaterial = "Выберите материал бусин:"
  textChooseColor    = "Выберите цвет:"
  textChooseOptions  = "Выберите дополнительные опции:"
  textRequestContact = "Пожалуйста, поделитесь своим контактом, чтобы мы могли с вами связаться."
  textCustomOrder    = "Пожалуйста, опишите ваш заказ в свободной форме. Вы можете приложить фото-пример. Когда закончите, нажмите «Завершить описание»."

  textShapesShown     = "Фотографии доступных форм отправлены выше."
  textShapesFailed    = "К сожалению, не удалось отобразить фотографии форм."
  textMaterialsShown  = "Фотографии материалов отправлены выше."
  textMaterialsFailed = "К сожалению, не удалось отобразить фотографии материалов."

  textChooseFromList  = "Пожалуйста, выберите вариант из предложенных."
  textOptionAdded     = "Опция «%s» добавлена. Выбрано: %s. Выберите ещё или нажмите «%s»."
  textOptionRepeated  = "Опция «%s» уже выбрана. Выбрано: %s. Выберите другую или нажмите «%s»."
  textConfirmOrCancel = "Подтвердите или отмените заказ кнопками под описанием."

  textDescriptionSaved    = "Описание сохранено. Вы можете добавить фото или завершить описание."
  textDescriptionEmpty    = "Описание не может быть пустым."
  textDescriptionProfane  = "Извините, но ваше сообщение содержит неприемлемый контент. Пожалуйста, переформулируйте ваш запрос."
  textDescriptionRequired = "Опишите заказ или прикрепите фото, прежде чем завершить описание."
  textPhotoTooLarge       = "Фото слишком большое. Максимальный размер: %s."
  textPhotoTooMany        = "Можно прикрепить не больше %d фото."
  textPhotoSaved          = "Фото сохранено (%d/%d). Вы можете добавить ещё фото или завершить описание."

  textOpenApp        = "Нажмите на кнопку ниже, чтобы открыть приложение для оформления заказа:"
  textAppUnavailable = "Приложение сейчас недоступно. Оформите заказ в чате."
  textWebAppInvalid  = "Не удалось прочитать заказ из приложения. Попробуйте ещё раз или оформите заказ в чате."

  textNoPrevious        = "Нет предыдущего шага. Чтобы начать заново, нажмите «Оформить заказ»."
  textOrderCancelled    = "Заказ отменен."
  textOrderBroken       = "Не удалось оформить заказ. Пожалуйста, начните заново."
  textOrderAccepted     = "Благодарим за заказ! Ваш заказ #%d принят, мы свяжемся с вами в ближайшее время."
  textOrderNotDelivered = "Благодарим за заказ! Ваш заказ #%d сохранен. Продавец увидит его чуть позже."
  textAnotherOrder      = "Для оформления дополнительного заказа нажмите на кнопку ниже:"
  textStepFailed        = "Произошла ошибка. Пожалуйста, попробуйте ещё раз."
)
